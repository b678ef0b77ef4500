package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Executor sends one request line and returns the response.
type Executor interface {
	Execute(ctx context.Context, line string) (string, error)
}

// Prompt is printed before each input line.
const Prompt = "msgserver> "

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	exec      Executor
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
}

// New creates a new REPL instance.
func New(exec Executor, input io.Reader, output io.Writer, history *History) *REPL {
	if history == nil {
		history = NewHistory("")
	}
	return &REPL{
		exec:      exec,
		input:     input,
		output:    output,
		completer: NewCompleter(),
		history:   history,
	}
}

// Run reads lines until EOF, exit or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	reader := bufio.NewReader(r.input)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(r.output, Prompt)

		line, err := reader.ReadString('\n')
		if err == io.EOF && line == "" {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil && err != io.EOF {
			return err
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		r.history.Add(line)

		switch strings.TrimSpace(line) {
		case "exit", "quit", ".exit":
			return nil
		case ".help":
			r.printHelp()
			continue
		case ".history":
			for i, entry := range r.history.Entries() {
				fmt.Fprintf(r.output, "%4d  %s\n", i+1, entry)
			}
			continue
		}

		resp, execErr := r.exec.Execute(ctx, line)
		if execErr != nil {
			fmt.Fprintf(r.output, "Error: %v\n", execErr)
		} else {
			fmt.Fprintln(r.output, resp)
		}

		if err == io.EOF {
			return nil
		}
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Requests:")
	fmt.Fprintln(r.output, "  PUT<key><message>   store a message (key is 8 characters)")
	fmt.Fprintln(r.output, "  GET<key>            fetch a message")
	fmt.Fprintln(r.output, "Shell commands:")
	fmt.Fprintln(r.output, "  "+strings.Join(r.completer.Complete("."), ", ")+", exit, quit")
}
