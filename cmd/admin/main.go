// Command admin is the operator tool for credentials in the stored format.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"shuttle-checkin/internal/core/config"
	"shuttle-checkin/pkg/utils"
)

const usage = `usage:
  admin hash-password <plaintext>   print the stored credential for plaintext
  admin gen-password [-n length]    print a random password`

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "admin:", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	switch cmd {
	case "hash-password":
		if len(args) != 1 {
			return fmt.Errorf("hash-password takes exactly one argument")
		}
		cfg, err := config.Read(config.Path(""))
		if err != nil {
			return err
		}
		h := utils.Hasher{
			N:       cfg.Credential.N,
			R:       cfg.Credential.R,
			P:       cfg.Credential.P,
			KeyLen:  cfg.Credential.KeyLen,
			SaltLen: cfg.Credential.SaltLen,
		}
		cred, err := h.Hash(args[0])
		if err != nil {
			return err
		}
		fmt.Println(cred)
		return nil
	case "gen-password":
		fs := flag.NewFlagSet("gen-password", flag.ContinueOnError)
		n := fs.Int("n", 10, "password length")
		if err := fs.Parse(args); err != nil {
			return err
		}
		pw, err := utils.RandomPassword(*n)
		if err != nil {
			return err
		}
		fmt.Println(pw)
		return nil
	}
	return fmt.Errorf("unknown command %q\n%s", cmd, usage)
}
