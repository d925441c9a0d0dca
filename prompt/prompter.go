package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

const affirmativeAnswer = "yes"

// Prompter asks questions on writer and reads the answers line by line from reader
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Writer returns the writer the prompter prints to
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Ask prints question and returns the next line without surrounding whitespace.
// ErrInputClosed is returned once the reader has no more lines
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.writer, question)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if input == "" {
			return "", dataErrors.ErrInputClosed
		}
	}

	return strings.TrimSpace(input), nil
}

// AskChoice asks question until the lowercased answer is one of choices
func (p *Prompter) AskChoice(question string, invalidMessage string, choices []string) (string, error) {
	for {
		input, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		answer := strings.ToLower(input)
		if utils.Contains(answer, choices) {
			return answer, nil
		}
		fmt.Fprintln(p.writer, invalidMessage)
	}
}

// AskYesNo asks question once. Only "yes", in any case, is an affirmative answer
func (p *Prompter) AskYesNo(question string) (bool, error) {
	input, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.ToLower(input) == affirmativeAnswer, nil
}
