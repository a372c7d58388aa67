// Command gapedit is a non-interactive demonstration harness for the
// editorcore module: it opens one file in a Workspace and applies a
// sequence of edit directives read from stdin, one per line. It is not a
// UI or a renderer.
//
// Directives:
//
//	insert <line> <offset> <text>
//	delete <startLine> <startOffset> <endLine> <endOffset>
//	undo
//	redo
//	save
//	print
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/textkit/editorcore/position"
	"github.com/textkit/editorcore/workspace"
)

func main() {
	root := flag.String("root", ".", "workspace root directory")
	file := flag.String("file", "", "file to open, relative to -root")
	syntaxFile := flag.String("syntax", "", "optional TOML syntax definitions file")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "gapedit: -file is required")
		os.Exit(2)
	}

	var opts []workspace.Option
	if *syntaxFile != "" {
		opts = append(opts, workspace.WithUserSyntaxPath(*syntaxFile))
	}
	ws, err := workspace.New(*root, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gapedit:", err)
		os.Exit(1)
	}
	defer ws.Close()

	buf, err := ws.Open(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gapedit:", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := runDirective(buf, strings.TrimSpace(scanner.Text())); err != nil {
			fmt.Fprintln(os.Stderr, "gapedit:", err)
		}
	}
}

func runDirective(buf interface {
	Insert(position.Position, string) error
	Delete(position.Range) error
	Undo() error
	Redo() error
	Save() error
	Text() string
}, line string) error {
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	name, rest, _ := strings.Cut(line, " ")
	switch name {
	case "insert":
		l, o, text, err := parseInsertArgs(rest)
		if err != nil {
			return err
		}
		return buf.Insert(position.New(l, o), text)
	case "delete":
		coords, err := parseInts(strings.Fields(rest), 4)
		if err != nil {
			return fmt.Errorf("delete requires <startLine> <startOffset> <endLine> <endOffset>: %w", err)
		}
		r := position.NewRange(position.New(coords[0], coords[1]), position.New(coords[2], coords[3]))
		return buf.Delete(r)
	case "undo":
		return buf.Undo()
	case "redo":
		return buf.Redo()
	case "save":
		return buf.Save()
	case "print":
		fmt.Println(buf.Text())
		return nil
	default:
		return fmt.Errorf("unknown directive %q", name)
	}
}

func parseInsertArgs(rest string) (line, offset int, text string, err error) {
	lineStr, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return 0, 0, "", fmt.Errorf("insert requires <line> <offset> <text>")
	}
	offsetStr, text, ok := strings.Cut(rest, " ")
	if !ok {
		return 0, 0, "", fmt.Errorf("insert requires <line> <offset> <text>")
	}
	line, err = strconv.Atoi(lineStr)
	if err != nil {
		return 0, 0, "", err
	}
	offset, err = strconv.Atoi(offsetStr)
	if err != nil {
		return 0, 0, "", err
	}
	return line, offset, text, nil
}

func parseInts(fields []string, want int) ([]int, error) {
	if len(fields) != want {
		return nil, fmt.Errorf("want %d integers, got %d", want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
