package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lsbkit/pkg/crypto"
)

var (
	errMissingKey = errors.New("a key is required, supply --key or --key-hex")
)

func CipherCommands() *cobra.Command {
	cipherCmd := &cobra.Command{
		Use:     "cipher",
		Short:   "Applies classical ciphers to data",
		Example: "lsbkit cipher encrypt --algorithm caesar --key 3 --input 'Hi'",
	}

	cipherCmd.AddCommand(
		cipherDirectionCommand(crypto.OperationTypeEncrypt),
		cipherDirectionCommand(crypto.OperationTypeDecrypt),
		listCiphersCommand(),
	)
	return cipherCmd
}

type cipherRunOpts struct {
	cipher     cipherOpts
	input      string
	inputFile  string
	inputHex   bool
	outputFile string
}

func cipherDirectionCommand(direction crypto.OperationType) *cobra.Command {
	opts := cipherRunOpts{}

	command := &cobra.Command{
		Use:     string(direction),
		Example: fmt.Sprintf("lsbkit cipher %s --algorithm vigenere --key lemon --input-file data.bin --output-file out.bin", direction),
		Short:   fmt.Sprintf("%s data with a classical cipher", direction),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunCipher(cmd.Context(), cmd.OutOrStdout(), direction, opts)
		},
	}

	opts.cipher.addFlags(command, "algorithm")
	command.Flags().StringVar(&opts.input, "input", "", "Data to process")
	command.Flags().StringVar(&opts.inputFile, "input-file", "", "File holding the data to process")
	command.Flags().BoolVar(&opts.inputHex, "input-hex", false, "The input is hex encoded")
	command.Flags().StringVar(&opts.outputFile, "output-file", "", "Write the raw result to this file instead of printing it hex encoded")

	MarkFlagsRequired(command, "algorithm")
	command.MarkFlagsOneRequired("input", "input-file")
	command.MarkFlagsMutuallyExclusive("input", "input-file")
	return command
}

// RunCipher applies the selected cipher to the input. Encrypting with otp and no key generates a random pad, which is
// printed so that the data can be decrypted later
func RunCipher(ctx context.Context, out io.Writer, direction crypto.OperationType, opts cipherRunOpts) error {
	input := []byte(opts.input)
	if opts.inputFile != "" {
		var err error
		if input, err = os.ReadFile(opts.inputFile); err != nil {
			return err
		}
	}
	if opts.inputHex {
		decoded, err := hex.DecodeString(string(input))
		if err != nil {
			return fmt.Errorf("decoding hex input: %w", err)
		}
		input = decoded
	}

	noKey := opts.cipher.key == "" && opts.cipher.keyHex == ""
	var result []byte
	switch {
	case noKey && opts.cipher.algorithm == "otp" && direction == crypto.OperationTypeEncrypt:
		cipherText, pad, err := crypto.OneTimePadRandom(input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "pad: %s\n", hex.EncodeToString(pad))
		result = cipherText
	case noKey:
		return errMissingKey
	default:
		cipher, err := opts.cipher.toCipher()
		if err != nil {
			return err
		}
		if direction == crypto.OperationTypeEncrypt {
			result, err = cipher.Encrypt(ctx, input)
		} else {
			result, err = cipher.Decrypt(ctx, input)
		}
		if err != nil {
			return err
		}
	}

	if opts.outputFile != "" {
		return os.WriteFile(opts.outputFile, result, 0664)
	}
	_, err := fmt.Fprintln(out, hex.EncodeToString(result))
	return err
}

func listCiphersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered cipher operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ListCipherOperations(cmd.OutOrStdout())
		},
	}
}

func ListCipherOperations(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tDESCRIPTION")
	for _, op := range crypto.ListOperations() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", op.Name(), op.Type(), op.Description())
	}
	return w.Flush()
}
