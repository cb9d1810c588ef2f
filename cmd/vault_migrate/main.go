// Maintenance tool for the encrypted vault: upgrade the KDF to argon2id
// (opt-in, never done automatically on unlock) or change the vault password.
// Usage:
//
//	go run ./cmd/vault_migrate -data-dir .owt -kdf argon2id
//	go run ./cmd/vault_migrate -data-dir .owt -change-password
package main

import (
	"flag"
	"fmt"
	"os"

	"owt/internal/model"
	"owt/internal/store"

	"golang.org/x/term"
)

func main() {
	dataDir := flag.String("data-dir", ".owt", "vault data directory")
	kdf := flag.String("kdf", "", "target kdf: pbkdf2 or argon2id")
	changePassword := flag.Bool("change-password", false, "re-encrypt the vault under a new password")
	flag.Parse()

	if *kdf == "" && !*changePassword {
		fmt.Fprintln(os.Stderr, "nothing to do: pass -kdf or -change-password")
		os.Exit(2)
	}
	if *kdf != "" && *kdf != model.KDFPBKDF2 && *kdf != model.KDFArgon2id {
		fmt.Fprintf(os.Stderr, "unsupported kdf %q\n", *kdf)
		os.Exit(2)
	}

	kv, err := store.NewFileKV(*dataDir)
	if err != nil {
		fatal(err)
	}
	st := store.New(kv)

	password := readPassword("Enter vault password: ")
	defer clear(password)

	if err := st.Unlock(password); err != nil {
		fatal(err)
	}

	// working tracks the password the blob is currently encrypted under,
	// so -change-password and -kdf compose in one run
	working := password

	if *changePassword {
		newPassword := readPassword("Enter new vault password: ")
		defer clear(newPassword)
		confirm := readPassword("Repeat new vault password: ")
		defer clear(confirm)

		if string(newPassword) != string(confirm) {
			fatal(fmt.Errorf("passwords do not match"))
		}
		if len(newPassword) == 0 {
			fatal(fmt.Errorf("password cannot be empty"))
		}
		if err := st.ChangePassword(working, newPassword); err != nil {
			fatal(err)
		}
		working = newPassword
		fmt.Println("password changed")
	}

	if *kdf != "" {
		if err := st.MigrateKDF(working, *kdf); err != nil {
			fatal(err)
		}
		fmt.Printf("vault re-encrypted with %s\n", *kdf)
	}
}

func readPassword(prompt string) []byte {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fatal(err)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
