package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/api"
)

const (
	commandQuit  = ":quit"
	commandBatch = ":batch"
)

const greeting = `Whiskers: drop an image file here, or paste a URL, a data URL or base64.
  :batch <file>  predict every input listed in <file> (one per line)
  :quit          exit`

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
	whiskers := api.NewAPI(config)
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	fmt.Println(greeting)
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == commandQuit:
			return nil
		case strings.HasPrefix(line, commandBatch):
			path := common.TrimQuotes(strings.TrimSpace(line[len(commandBatch):]))
			err := predictBatch(whiskers, path, os.Stdout)
			if err != nil {
				fmt.Println(err)
			}
		default:
			printPrediction(whiskers, line, os.Stdout)
		}
	}
	return nil
}

func predictBatch(whiskers api.API, path string, out io.Writer) error {
	if path == "" {
		return fmt.Errorf("usage: %s <file>", commandBatch)
	}
	inputs, err := common.ReadAllLines(path)
	if err != nil {
		return err
	}
	for i, input := range inputs {
		_, _ = fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(inputs), shorten(input))
		printPrediction(whiskers, input, out)
	}
	return nil
}

func printPrediction(whiskers api.API, input string, out io.Writer) {
	response, err := whiskers.PredictFromInput(input)
	if err != nil {
		_, _ = fmt.Fprintf(out, "An error occurred during prediction: %s\n", err)
		return
	}
	_, _ = fmt.Fprintln(out, response)
}

// base64 input can be megabytes long
func shorten(input string) string {
	const maxLength = 80
	if len(input) <= maxLength {
		return input
	}
	return input[:maxLength] + "..."
}
