// Package session runs the interactive calculator menu.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/store"
)

const banner = `
     _____________________
    |  _________________  |
    | | FUN CALCULATOR  | |
    | |_________________| |
    |  ___ ___ ___ ___ ___ |
    | | 7 | 8 | 9 | + | ^ |
    | |___|___|___|___|___|
    | | 4 | 5 | 6 | - | √ |
    | |___|___|___|___|___|
    | | 1 | 2 | 3 | * | ! |
    | |___|___|___|___|___|
    | | 0 | . | = | / | C |
    | |___|___|___|___|___|
`

const menu = `
==== MENU ====
1. Expression Calculator
2. Factorial
3. Complex Numbers
4. Toggle Scientific Mode
5. Show History
6. Show Memory
0. Exit
Choice: `

// Session is one run of the interactive calculator. It is not safe for
// concurrent use.
type Session struct {
	state *State
	in    *bufio.Reader
	out   io.Writer
	store *store.Store
	log   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets the store from which memory is loaded when the session
// starts and to which it is saved on exit. Without a store, memory is not
// persisted.
func WithStore(s *store.Store) Option {
	return func(sess *Session) {
		sess.store = s
	}
}

// WithLogger sets the logger for warnings. The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(sess *Session) {
		sess.log = l
	}
}

// New creates a session which reads choices from in and writes prompts and
// results to out. state is modified as the session runs.
func New(state *State, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		state: state,
		in:    bufio.NewReader(in),
		out:   out,
		log:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loads memory, then shows the menu and handles choices until the user
// exits or the input ends. Memory is saved either way. The error is non-nil
// only if reading input or saving memory fails.
func (s *Session) Run() error {
	if s.store != nil {
		m, err := s.store.Load()
		if err != nil {
			s.log.Printf("warning: %v; memory starts at 0", err)
		}
		s.state.Memory = m
	}
	fmt.Fprint(s.out, banner)
	fmt.Fprintf(s.out, "Memory loaded: %g\n\n", s.state.Memory)
	for {
		fmt.Fprint(s.out, menu)
		line, err := s.readLine()
		if err != nil {
			return s.exit(err)
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid choice: %q\n", line)
			continue
		}
		switch choice {
		case 1:
			err = s.expression()
		case 2:
			err = s.factorial()
		case 3:
			err = s.complex()
		case 4:
			err = s.scientific()
		case 5:
			s.history()
		case 6:
			fmt.Fprintf(s.out, "Memory = %g\n", s.state.Memory)
		case 0:
			return s.exit(nil)
		default:
			fmt.Fprintf(s.out, "Invalid choice: %q\n", line)
		}
		if err != nil {
			return s.exit(err)
		}
	}
}

// exit saves memory. err is the reason for exiting; io.EOF is a normal exit.
func (s *Session) exit(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if s.store != nil {
		if err := s.store.Save(s.state.Memory); err != nil {
			return err
		}
		fmt.Fprint(s.out, "\nMemory saved. ")
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return nil
}

// readLine reads one line of input without its line terminator or
// surrounding space. A final line without a terminator is returned with a nil
// error.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Session) expression() error {
	fmt.Fprint(s.out, "Enter expression (e.g. 3+4*5): ")
	expr, err := s.readLine()
	if err != nil {
		return err
	}
	r, err := calculator.Evaluate(expr)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	s.state.Memory = r
	s.state.History.Add(expr, r)
	fmt.Fprintf(s.out, "Result: %g\n", r)
	return nil
}

func (s *Session) factorial() error {
	fmt.Fprint(s.out, "Enter integer: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid integer: %q\n", line)
		return nil
	}
	fmt.Fprintf(s.out, "%d! = %d\n", n, calculator.Factorial(n))
	return nil
}

func (s *Session) complex() error {
	var z [2]complex128
	for i := range z {
		fmt.Fprintf(s.out, "Enter z%d (real imag): ", i+1)
		line, err := s.readLine()
		if err != nil {
			return err
		}
		f := strings.Fields(line)
		if len(f) != 2 {
			fmt.Fprintf(s.out, "Invalid complex number: %q\n", line)
			return nil
		}
		re, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid complex number: %q\n", line)
			return nil
		}
		im, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid complex number: %q\n", line)
			return nil
		}
		z[i] = complex(re, im)
	}
	fmt.Fprintf(s.out, "z1 + z2 = %s\n", calculator.FormatComplex(calculator.ComplexSum(z[0], z[1])))
	fmt.Fprintf(s.out, "z1 * z2 = %s\n", calculator.FormatComplex(calculator.ComplexProduct(z[0], z[1])))
	return nil
}

// scientific toggles scientific mode. Turning it on also evaluates one
// scientific function, whose result goes to memory.
func (s *Session) scientific() error {
	s.state.Scientific = !s.state.Scientific
	if !s.state.Scientific {
		fmt.Fprintln(s.out, "Scientific mode OFF")
		return nil
	}
	fmt.Fprintln(s.out, "Scientific mode ON")
	fmt.Fprintf(s.out, "Command (%s): ", strings.Join(calculator.ScientificNames(), " "))
	line, err := s.readLine()
	if err != nil {
		return err
	}
	f := strings.Fields(line)
	if len(f) != 2 {
		fmt.Fprintf(s.out, "Invalid command: %q\n", line)
		return nil
	}
	x, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid command: %q\n", line)
		return nil
	}
	r := calculator.Scientific(f[0], x)
	s.state.Memory = r
	fmt.Fprintf(s.out, "Result: %g\n", r)
	return nil
}

func (s *Session) history() {
	fmt.Fprint(s.out, "\n--- HISTORY ---\n")
	for _, e := range s.state.History {
		fmt.Fprintln(s.out, e)
	}
}
