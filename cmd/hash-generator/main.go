// Command hash-generator prints bcrypt hashes for seeding user accounts.
//
// Passwords are taken from the arguments, or read one per line from stdin
// when no arguments are given:
//
//	hash-generator --cost 12 s3cret another-pass
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/restaurant-api/internal/service/auth"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("hash-generator", pflag.ContinueOnError)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	quiet := fs.BoolP("quiet", "q", false, "print only the hashes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hasher, err := auth.NewBcryptHasher(*cost)
	if err != nil {
		return err
	}

	passwords := fs.Args()
	if len(passwords) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if *quiet {
			fmt.Fprintln(stdout, hash)
			continue
		}
		fmt.Fprintf(stdout, "Password: %s\nHash: %s\n\n", password, hash)
	}
	return nil
}
