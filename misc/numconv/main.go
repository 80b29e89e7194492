package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	bignum "github.com/shabbyrobe/go-bignum"
)

// numconv is a small tool for poking at the string codec from the command
// line. It is handy for cross-checking values against other tools without
// having to write a test first.

const usage = `Number base converter

Usage: numconv [options] <value>...

Each value is parsed in the -in base (0 detects 0x/0b prefixes), and printed
in the -out base, or as a Roman numeral if -out is "roman".

`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		inBase    = 0
		out       = "10"
		minDigits = 1
		upper     = false
		dump      = false
	)

	fs := flag.NewFlagSet("numconv", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.IntVar(&inBase, "in", inBase, "Input base (0 or 2-36)")
	fs.StringVar(&out, "out", out, "Output base (2-36), or 'roman'")
	fs.IntVar(&minDigits, "digits", minDigits, "Minimum number of output digits")
	fs.BoolVar(&upper, "upper", upper, "Use upper-case letter digits")
	fs.BoolVar(&dump, "dump", dump, "Dump the limbs of each value")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		return fmt.Errorf("missing args")
	}

	outBase, roman, err := parseOut(out)
	if err != nil {
		return err
	}

	for _, arg := range args {
		v, err := bignum.IntegerFromString(arg, inBase)
		if err != nil {
			return err
		}

		var s string
		if roman {
			s, err = v.Roman(upper)
		} else {
			s, err = v.Text(outBase, minDigits, upper)
		}
		if err != nil {
			return err
		}
		fmt.Println(s)

		if dump {
			fmt.Printf("sign:%d bits:%d hash:%#016x\n", v.Sign(), v.Magnitude().BitLen(), v.Hash())
			spew.Dump(v.Magnitude().Limbs())
		}
	}
	return nil
}

// parseOut accepts a base in [2, bignum.MaxBase], or the literal "roman".
func parseOut(out string) (base int, roman bool, err error) {
	if out == "roman" {
		return 0, true, nil
	}
	base, err = strconv.Atoi(out)
	if err != nil || base < 2 || base > bignum.MaxBase {
		return 0, false, fmt.Errorf("numconv: invalid -out %q", out)
	}
	return base, false, nil
}
