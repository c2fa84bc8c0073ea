// Command thicketrepl is an interactive sandbox for exercising a parser
// built on top of package thicket. It wires up a small arithmetic
// expression grammar (with the usual precedence and associativity rules)
// and a lexmachine-based tokenizer, reads expressions on a readline
// prompt, and reports how many distinct parse trees survived
// disambiguation for each one — along with a fully-parenthesized
// rendering when exactly one tree remains.
//
// It is a demo harness, not part of the parser itself: package thicket
// takes pre-tokenized input and has no opinion on how a caller gets
// there. thicketrepl shows one way.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/schuko/tracing"

	"github.com/nparse/thicket"
	"github.com/nparse/thicket/enum"
	"github.com/nparse/thicket/forest"
	"github.com/nparse/thicket/grammar"
)

// tracer traces with key 'thicket.cmd.thicketrepl'.
func tracer() tracing.Trace {
	return tracing.Select("thicket.cmd.thicketrepl")
}

func main() {
	initDisplay()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to thicketrepl")
	tracer().Infof("Trace level is %s", *tlevel)

	g, err := makeCalcGrammar()
	if err != nil {
		tracer().Errorf("building grammar: %v", err)
		os.Exit(2)
	}
	lex, err := newCalcLexer()
	if err != nil {
		tracer().Errorf("compiling lexer: %v", err)
		os.Exit(2)
	}

	repl, err := readline.New("thicket> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	intp := &interp{
		parser: thicket.NewParser(g),
		lex:    lex,
		repl:   repl,
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.loop()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(name string) tracing.TraceLevel {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

// interp holds the REPL's long-lived state: the parser (frozen after
// grammar construction) and the tokenizer, plus the readline instance
// driving the loop.
type interp struct {
	parser *thicket.Parser
	lex    *calcLexer
	repl   *readline.Instance
}

func (intp *interp) loop() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.eval(line)
	}
	pterm.Info.Println("Good bye!")
}

func (intp *interp) eval(line string) {
	toks, lexemes, err := intp.lex.scan(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	fo, err := intp.parser.Parse(toks)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	n := fo.Count()
	switch n {
	case 0:
		pterm.Error.Println("no parse trees survived disambiguation")
	case 1:
		it := fo.Trees()
		it.Next()
		pterm.Info.Println(fmt.Sprintf("1 tree survived disambiguation: %s",
			renderExpr(it.Tree(), it.Tree().Root, lexemes)))
	default:
		pterm.Info.Println(fmt.Sprintf("%d trees survived disambiguation", n))
		it := fo.Trees()
		for i := 0; it.Next(); i++ {
			pterm.Info.Println(fmt.Sprintf("  [%d] %s", i, renderExpr(it.Tree(), it.Tree().Root, lexemes)))
		}
	}
}

// renderExpr renders a calculator parse tree as a fully-parenthesized
// infix expression, looking the original lexeme text up by leaf position
// (terminals carry only their token class, not their text, so the
// leaf's span is the only way back to what was actually typed).
func renderExpr(tree *enum.Tree, n *forest.Node, lexemes []string) string {
	children := tree.Children(n)
	if len(children) == 1 {
		c := children[0]
		if c.Node != nil {
			return renderExpr(tree, c.Node, lexemes)
		}
		return lexemes[c.Leaf.I]
	}
	// len(children) == 3: either a binary operator (node, leaf, node) or
	// a parenthesized sub-expression (leaf, node, leaf) — tell them apart
	// by which slot actually holds a Node.
	if children[0].Node != nil {
		left := renderExpr(tree, children[0].Node, lexemes)
		op := lexemes[children[1].Leaf.I]
		right := renderExpr(tree, children[2].Node, lexemes)
		return fmt.Sprintf("(%s%s%s)", left, op, right)
	}
	return renderExpr(tree, children[1].Node, lexemes)
}

// --- grammar -----------------------------------------------------------

// makeCalcGrammar builds a small arithmetic expression grammar:
//
//	E -> E '+' E | E '-' E | E '*' E | E '/' E | E '^' E | '(' E ')' | NUM
//
// with the usual precedence (^  >  * /  >  + -), left associativity for
// + - * /, and right associativity for ^.
func makeCalcGrammar() (*grammar.Grammar, error) {
	b := grammar.NewBuilder("Calc")
	plus := b.LHS("E").N("E").T("+", "+").N("E").End()
	minus := b.LHS("E").N("E").T("-", "-").N("E").End()
	mul := b.LHS("E").N("E").T("*", "*").N("E").End()
	div := b.LHS("E").N("E").T("/", "/").N("E").End()
	caret := b.LHS("E").N("E").T("^", "^").N("E").End()
	b.LHS("E").T("(", "(").N("E").T(")", ")").End()
	b.LHS("E").T("num", "NUM").End()

	r := grammar.NewRules().
		AssociateGroup(grammar.LeftAssoc, plus, minus).
		AssociateGroup(grammar.LeftAssoc, mul, div).
		Associate(caret, grammar.RightAssoc).
		Priority(mul, plus).Priority(mul, minus).
		Priority(div, plus).Priority(div, minus).
		Priority(caret, plus).Priority(caret, minus).
		Priority(caret, mul).Priority(caret, div)
	b.WithRules(r)

	return b.Grammar()
}

// --- tokenizer -----------------------------------------------------------

// lexeme is what a lexmachine action hands back: the token's grammar
// class (what the parser matches on) and its literal text (what the
// user typed).
type lexeme struct {
	class, text string
}

// calcLexer wraps a compiled lexmachine DFA for the calculator grammar.
type calcLexer struct {
	lex *lexmachine.Lexer
}

func newCalcLexer() (*calcLexer, error) {
	lex := lexmachine.NewLexer()
	for _, op := range []string{"+", "-", "*", "/", "^", "(", ")"} {
		op := op
		lex.Add([]byte("\\"+op), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return lexeme{class: op, text: string(m.Bytes)}, nil
		})
	}
	lex.Add([]byte(`[0-9]+(\.[0-9]+)?`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return lexeme{class: "NUM", text: string(m.Bytes)}, nil
	})
	lex.Add([]byte(`( |\t)+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil // skip whitespace
	})
	if err := lex.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &calcLexer{lex: lex}, nil
}

// scan tokenizes input into a token stream the grammar can match
// against (the class of each lexeme) plus a parallel slice of the
// original lexeme text, indexed the same way, for rendering results.
func (l *calcLexer) scan(input string) ([]thicket.Token, []string, error) {
	s, err := l.lex.Scanner([]byte(input))
	if err != nil {
		return nil, nil, err
	}
	var toks []thicket.Token
	var texts []string
	for {
		tok, err, eof := s.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				s.TC = ui.FailTC
				tracer().Errorf("unrecognized input at position %d", ui.FailTC)
				continue
			}
			return nil, nil, err
		}
		if eof {
			break
		}
		lx := tok.(lexeme)
		toks = append(toks, lx.class)
		texts = append(texts, lx.text)
	}
	return toks, texts, nil
}
