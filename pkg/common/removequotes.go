package common

// TrimQuotes removes one pair of matching single or double quotes around `str`, if any. Terminals often quote
// dragged-and-dropped file paths: '/home/john/my cat.png'
func TrimQuotes(str string) string {
	if len(str) < 2 {
		return str
	}
	first, last := str[0], str[len(str)-1]
	if first == last && (first == '\'' || first == '"') {
		return str[1 : len(str)-1]
	}
	return str
}
