// Package repl is an interactive loop for probing a loaded document: reading
// paths, testing field presence, and checking values against shape names.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"probe/src/path"
	"probe/src/shape"
	"probe/src/value"
)

// REPL holds the document under inspection and where output is written.
type REPL struct {
	doc         value.Value
	out         io.Writer
	interrupted bool
}

// New creates a repl over doc writing all output to out.
func New(doc value.Value, out io.Writer) *REPL {
	return &REPL{doc: doc, out: out}
}

// Run reads commands until exit or interrupt. Command errors are printed and
// never end the loop.
func (r *REPL) Run() error {
	rl, err := readline.New("probe> ")
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()
	fmt.Fprint(r.out, "Type help for commands, ctrl-c to quit.\n")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if r.onInterrupt() {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			fmt.Fprintln(r.out, err)
			continue
		}
		if quit := r.exec(line); quit {
			return nil
		}
	}
}

// onInterrupt reports whether the loop should end. The first ctrl-c only
// warns and clears the line; a second consecutive ctrl-c quits. Executing
// any line in between resets the state.
func (r *REPL) onInterrupt() bool {
	if r.interrupted {
		return true
	}
	r.interrupted = true
	fmt.Fprint(r.out, "Press ctrl-c again to quit.\n")
	return false
}

// exec runs a single command line and reports whether the loop should end.
func (r *REPL) exec(line string) bool {
	r.interrupted = false
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		r.printHelp()
	case "get":
		r.withPath(args, 0, func(val value.Value) {
			fmt.Fprintln(r.out, val.String())
		})
	case "has":
		if len(args) != 1 {
			fmt.Fprintln(r.out, "usage: has <path>")
			return false
		}
		_, found, err := r.eval(args[0])
		if err != nil {
			// a malformed path is not the same as an absent one.
			fmt.Fprintln(r.out, err)
			return false
		}
		fmt.Fprintln(r.out, found)
	case "kind":
		r.withPath(args, 0, func(val value.Value) {
			fmt.Fprintln(r.out, val.Kind())
		})
	case "keys":
		r.withPath(args, 0, func(val value.Value) {
			obj, isObj := value.AsObject(val)
			if !isObj {
				fmt.Fprintf(r.out, "%s is not an object\n", args[0])
				return
			}
			fmt.Fprintln(r.out, strings.Join(obj.Keys(), "\n"))
		})
	case "check":
		if len(args) != 2 {
			fmt.Fprintln(r.out, "usage: check <shape> <path>")
			return false
		}
		defn, err := shape.ParseName(args[0])
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		r.withPath(args, 1, func(val value.Value) {
			fmt.Fprintln(r.out, defn.Check(val))
		})
	default:
		fmt.Fprintf(r.out, "unknown command %q, type help for commands\n", cmd)
	}
	return false
}

func (r *REPL) withPath(args []string, idx int, fn func(value.Value)) {
	if len(args) <= idx {
		fmt.Fprintln(r.out, "missing path argument")
		return
	}
	val, found, err := r.eval(args[idx])
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	if !found {
		fmt.Fprintf(r.out, "%s: not found\n", args[idx])
		return
	}
	fn(val)
}

func (r *REPL) eval(src string) (value.Value, bool, error) {
	p, err := path.Compile(src)
	if err != nil {
		return nil, false, err
	}
	val, found := p.Eval(r.doc)
	return val, found, nil
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, strings.TrimLeft(`
get <path>           print the value at path
has <path>           report whether path resolves
kind <path>          print the kind of the value at path
keys <path>          print the field names of the object at path
check <shape> <path> check the value at path against a shape name
exit                 leave the repl
`, "\n"))
}
