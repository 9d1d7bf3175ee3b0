package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"justice-airdrop.backend/pkg/crypto"
)

const keyPrefix = "jad_"

func validateInputs(byteLen, cost int) error {
	if byteLen < 16 {
		return fmt.Errorf("invalid bytes: %d (must be at least 16)", byteLen)
	}
	if cost < 4 || cost > 31 {
		return fmt.Errorf("invalid cost: %d (allowed: 4-31)", cost)
	}
	return nil
}

// buildCredentials returns a new admin key and its bcrypt hash
func buildCredentials(byteLen, cost int) (string, string, error) {
	if err := validateInputs(byteLen, cost); err != nil {
		return "", "", err
	}
	raw, err := crypto.GenerateRandomToken(byteLen)
	if err != nil {
		return "", "", err
	}
	key := keyPrefix + raw
	hash, err := crypto.HashSecret(key, cost)
	if err != nil {
		return "", "", err
	}
	return key, hash, nil
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("apikey-gen", flag.ContinueOnError)
	byteLen := fs.Int("bytes", 32, "random bytes in the key")
	cost := fs.Int("cost", crypto.DefaultCost, "bcrypt cost of the hash")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, hash, err := buildCredentials(*byteLen, *cost)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Generated admin credentials")
	_, _ = fmt.Fprintf(out, "BOT_API_KEY=%s\n", key)
	_, _ = fmt.Fprintf(out, "BOT_API_KEY_HASH=%s\n", hash)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
