package cli

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"lsbkit/internal/workflow"
	"lsbkit/pkg/model"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

// NewSpinner writes to stderr so that it never mixes with revealed data printed on stdout
func NewSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
}

func setSpinnerPrefix(s *spinner.Spinner, prefix string) {
	s.Lock()
	s.Prefix = prefix
	s.Unlock()
}

func mapPngCompression(name string) png.CompressionLevel {
	mappedCompression, found := pngCompressionMapping[name]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return mappedCompression
}

type cipherOpts struct {
	algorithm string
	key       string
	keyHex    string
}

func (o *cipherOpts) addFlags(cmd *cobra.Command, flagName string) {
	cmd.Flags().StringVar(&o.algorithm, flagName, "", "Cipher to apply to the payload. Options are caesar, vigenere, xor, otp, cbc")
	cmd.Flags().StringVar(&o.key, "key", "", "Cipher key as text. Caesar and xor also accept a number between 0 and 255")
	cmd.Flags().StringVar(&o.keyHex, "key-hex", "", "Cipher key as hex encoded bytes")
	cmd.MarkFlagsMutuallyExclusive("key", "key-hex")
}

// toCipher returns nil when no algorithm was requested
func (o *cipherOpts) toCipher() (*workflow.Cipher, error) {
	if o.algorithm == "" {
		return nil, nil
	}
	key, err := workflow.ParseKey(o.algorithm, o.key, o.keyHex)
	if err != nil {
		return nil, err
	}
	cipher := &workflow.Cipher{Algorithm: o.algorithm, Key: key}
	return cipher, cipher.Validate()
}

func openInputFile(path string) (model.InputFile, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.InputFile{}, nil, err
	}
	fileStat, err := f.Stat()
	if err != nil {
		f.Close()
		return model.InputFile{}, nil, err
	}
	return model.InputFile{Name: f.Name(), Content: f, Size: fileStat.Size()}, f.Close, nil
}

func printEmbedStats(w io.Writer, stats model.EmbedStats) {
	fmt.Fprintf(w, "Capacity: %s (%d bits)\n", humanize.Bytes(uint64(stats.CapacityBits/8)), stats.CapacityBits)
	fmt.Fprintf(w, "Payload: %s bits (%.1f%% of capacity)\n", humanize.Comma(int64(stats.PayloadBits)), percentage(stats.PayloadBits, stats.CapacityBits))
	if stats.Lossless {
		fmt.Fprintln(w, "PSNR: identical to cover")
	} else {
		fmt.Fprintf(w, "PSNR: %.2f dB\n", stats.PSNR)
	}
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
