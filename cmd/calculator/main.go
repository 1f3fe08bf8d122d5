package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/session"
	"github.com/zephyrtronium/calculator/internal/store"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, memname string
		nl, interactive       bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions (- for stdin)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&memname, "memory", store.DefaultPath, "file holding the memory value")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&interactive, "i", false, "run the interactive menu even with other input")
	flag.Parse()

	mem := store.Open(memname)
	if interactive || (inname == "" && flag.NArg() == 0) {
		var state session.State
		s := session.New(&state, os.Stdin, os.Stdout,
			session.WithStore(mem),
			session.WithLogger(log.Default()),
		)
		if err := s.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	var ins []io.RuneScanner
	f, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var opts []calculator.Option
	if nl {
		opts = append(opts, calculator.StopOn('\n'))
	}
	verb += "\n"
	var last float64
	var ok bool
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if !skipSpace(in) {
				break
			}
			r, err := calculator.Eval(in, opts...)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf(verb, r)
			last, ok = r, true
		}
	}
	if ok {
		if err := mem.Save(last); err != nil {
			log.Fatal(err)
		}
	}
}

// skipSpace consumes whitespace and reports whether anything remains.
func skipSpace(in io.RuneScanner) bool {
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err != io.EOF {
				log.Fatal(err)
			}
			return false
		}
		if !unicode.IsSpace(r) {
			in.UnreadRune()
			return true
		}
	}
}

func infile(inname string) (io.RuneScanner, error) {
	var f *os.File
	switch inname {
	case "":
		return nil, nil
	case "-":
		f = os.Stdin
	default:
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	}
	return bufio.NewReader(store.NewDecoder(f)), nil
}
