package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/whyrusleeping/hellabot"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/api"
)

const maxReplyLength = 400

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	_ = godotenv.Load()
	config, err := common.LoadConfigOrEmpty("config.yaml")
	if err != nil {
		return err
	}
	nick := config.GetStringOrDefault("ircNick", "Whiskers")
	channel := config.GetStringOrDefault("ircChannel", "#whiskers")
	serverName := config.GetStringOrDefault("ircServer", "irc.libera.chat:6667")
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"))
	whiskers := api.NewPublicAPIWithLogger(config, logger)
	// Predictions can take seconds; they must not block the bot's read loop.
	jobQueue := common.NewJobQueue(config.GetIntOrDefault("workerCount", 2), logger)
	defer jobQueue.Stop()
	ircBot, err := hbot.NewBot(serverName, nick)
	if err != nil {
		return err
	}
	var trigger = hbot.Trigger{
		Condition: func(b *hbot.Bot, m *hbot.Message) bool {
			return m.Command == "PRIVMSG"
		},
		Action: func(b *hbot.Bot, m *hbot.Message) bool {
			input, ok := addressedInput(nick, m.Content)
			if !ok {
				return false
			}
			from := m.From
			jobQueue.Enqueue(func() error {
				response, err := whiskers.PredictFromInput(input)
				if err != nil {
					b.Reply(m, formatReply(from, "error: "+err.Error()))
					return err
				}
				b.Reply(m, formatReply(from, response))
				return nil
			})
			return true
		},
	}
	ircBot.AddTrigger(trigger)
	ircBot.Channels = []string{channel}
	ircBot.Run()
	return nil
}

// addressedInput extracts the input from messages like "Whiskers: https://example.com/cat.png" or
// "whiskers, https://...". Messages addressed to someone else are ignored.
func addressedInput(nick, content string) (string, bool) {
	if len(content) <= len(nick) || !strings.EqualFold(content[:len(nick)], nick) {
		return "", false
	}
	rest := content[len(nick):]
	if rest[0] != ':' && rest[0] != ',' {
		return "", false
	}
	input := strings.TrimSpace(rest[1:])
	return input, input != ""
}

// IRC messages are single-line and limited in length, while raw responses from the endpoint may be neither.
func formatReply(to, message string) string {
	message = strings.Join(strings.Fields(message), " ")
	if len(message) > maxReplyLength {
		cut := maxReplyLength
		for cut > 0 && !utf8.RuneStart(message[cut]) {
			cut--
		}
		message = message[:cut] + "..."
	}
	return fmt.Sprintf("%s: %s", to, message)
}
