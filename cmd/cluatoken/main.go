// Command cluatoken is the end-to-end test harness for the CLua lexer:
// it reads one line from standard input, tokenizes it to EndOfFile, and
// prints one line per token. It is an external collaborator of the
// lexer core, not part of its design — see the package doc of
// github.com/clua-lang/clua/lexer for the tokenizer itself.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pborman/getopt"

	"github.com/clua-lang/clua/lexer"
	"github.com/clua-lang/clua/token"
)

func main() {
	var (
		startInLua bool
		dump       bool
		help       bool
	)
	getopt.BoolVarLong(&startInLua, "lua", 0, "start tokenizing in LuaU mode instead of CLua")
	getopt.BoolVarLong(&dump, "dump", 0, "pretty-print the full token struct instead of the line format")
	getopt.BoolVarLong(&help, "help", 'h', "display this help")
	getopt.SetParameters("")
	getopt.Parse()

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	logger := log.New(os.Stderr, "cluatoken: ", 0)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		logger.Print("no input provided")
		os.Exit(1)
	}
	line = trimTrailingNewline(line)
	if line == "" {
		logger.Print("no input provided")
		os.Exit(1)
	}

	src := []byte(line)
	lex := lexer.New(src)
	if startInLua {
		lex.SetMode(lexer.ModeLuaU)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for {
		tok := lex.ProcessNextToken()

		if dump {
			repr.Println(tok)
		} else {
			printLine(out, lex, src, tok)
		}

		if tok.Kind == token.EndOfFile {
			break
		}
	}
}

// printLine renders tok in the §6 line format: an error line preceding
// the token line when the token's kind is Error, then
// "Token Type: <kind_id> <spelling>".
func printLine(out *bufio.Writer, lex *lexer.Lexer, src []byte, tok token.Token) {
	if tok.Kind == token.Error {
		fmt.Fprintln(out, "error encountered while interpreting the file")
		fmt.Fprintf(out, "error code: %d\n", lex.LastError())
	}
	fmt.Fprintf(out, "Token Type: %d %s\n", tok.Kind, tok.Text(src))
}

func trimTrailingNewline(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
	}
	if n > 0 && s[n-1] == '\r' {
		n--
	}
	return s[:n]
}
