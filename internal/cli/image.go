package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lsbkit/internal/imageio"
	"lsbkit/internal/logging"
	"lsbkit/internal/workflow"
	"lsbkit/pkg/config"
	"lsbkit/pkg/image"
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Performs steganography operations on images",
		Example: "lsbkit image embed-text --image cover.png --output-file output.png --message 'meet at noon' --cipher vigenere --key lemon --framed",
	}

	imageCmd.AddCommand(embedTextCommand(), revealTextCommand(), embedImageCommand(), revealImageCommand(), convertImageCommand())
	return imageCmd
}

type embedTextOpts struct {
	sourceImage    string
	outputImage    string
	message        string
	messageFile    string
	framed         bool
	pngCompression string
	cipher         cipherOpts
}

func (o embedTextOpts) toEmbedConfig() config.EmbedConfig {
	return config.EmbedConfig{
		PngCompressionLevel: mapPngCompression(o.pngCompression),
		Framed:              o.framed,
	}
}

func embedTextCommand() *cobra.Command {
	opts := embedTextOpts{}

	command := &cobra.Command{
		Use:     "embed-text",
		Example: "lsbkit image embed-text --image cover.png --output-file output.png --message-file secret.txt --framed",
		Short:   "Hide a text message in the least significant bits of an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EmbedTextInImage(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	command.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image to hide the message in (it will not be modified)")
	command.Flags().StringVar(&opts.outputImage, "output-file", "", "Path of the generated image, ending in .png or .bmp")
	command.Flags().StringVar(&opts.message, "message", "", "Message to hide")
	command.Flags().StringVar(&opts.messageFile, "message-file", "", "File holding the message to hide")
	command.Flags().BoolVar(&opts.framed, "framed", false, "Prefix the message with its length so that it can be revealed exactly. Fails if the image is too small")
	command.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	opts.cipher.addFlags(command, "cipher")

	MarkFlagsRequired(command, "image", "output-file")
	command.MarkFlagsOneRequired("message", "message-file")
	command.MarkFlagsMutuallyExclusive("message", "message-file")

	return command
}

func EmbedTextInImage(ctx context.Context, out io.Writer, opts embedTextOpts) error {
	message := []byte(opts.message)
	if opts.messageFile != "" {
		var err error
		if message, err = os.ReadFile(opts.messageFile); err != nil {
			return err
		}
	}

	cipher, err := opts.cipher.toCipher()
	if err != nil {
		return err
	}
	format, err := imageio.FormatFromPath(opts.outputImage)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Reading cover image "
	s.Start()
	defer s.Stop()

	cover, closeCover, err := openInputFile(opts.sourceImage)
	if err != nil {
		return err
	}
	embedder, err := workflow.NewEmbedder(cover, opts.toEmbedConfig(), cipher)
	closeCover()
	if err != nil {
		return err
	}

	setSpinnerPrefix(s, "Embedding message ")
	if err = embedder.EmbedText(ctx, message); err != nil {
		return err
	}

	setSpinnerPrefix(s, "Generating output image ")
	if err = writeEmbedderOutput(embedder, opts.outputImage, format); err != nil {
		return err
	}
	s.Stop()

	stats := embedder.Stats()
	logging.BuildLogger().With("stats", stats).Debug("Embedded text")
	fmt.Fprintf(out, "Generated %s with the message embedded\n", opts.outputImage)
	printEmbedStats(out, stats)
	return nil
}

func writeEmbedderOutput(embedder *workflow.Embedder, path string, format imageio.Format) error {
	outputFile, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = embedder.WriteEncoded(outputFile, format); err != nil {
		outputFile.Close()
		return err
	}
	return outputFile.Close()
}

type revealTextOpts struct {
	sourceImage string
	outputFile  string
	framed      bool
	cipher      cipherOpts
}

func revealTextCommand() *cobra.Command {
	opts := revealTextOpts{}

	command := &cobra.Command{
		Use:     "reveal-text",
		Example: "lsbkit image reveal-text --image output.png --framed --cipher vigenere --key lemon",
		Short:   "Reveal a text message hidden with embed-text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RevealTextFromImage(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	command.Flags().StringVar(&opts.sourceImage, "image", "", "Image holding the hidden message")
	command.Flags().StringVar(&opts.outputFile, "output-file", "", "Write the message to this file instead of stdout")
	command.Flags().BoolVar(&opts.framed, "framed", false, "The message was embedded with --framed")
	opts.cipher.addFlags(command, "cipher")

	MarkFlagsRequired(command, "image")
	return command
}

func RevealTextFromImage(ctx context.Context, out io.Writer, opts revealTextOpts) error {
	cipher, err := opts.cipher.toCipher()
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Reading source image "
	s.Start()
	defer s.Stop()

	input, closeInput, err := openInputFile(opts.sourceImage)
	if err != nil {
		return err
	}
	revealer, err := workflow.NewRevealer(input, cipher, opts.framed)
	closeInput()
	if err != nil {
		return err
	}

	setSpinnerPrefix(s, "Revealing message ")
	message, err := revealer.RevealText(ctx)
	if err != nil {
		return err
	}
	s.Stop()

	logging.BuildLogger().With("stats", revealer.Stats()).Debug("Revealed text")
	if opts.outputFile != "" {
		return os.WriteFile(opts.outputFile, message, 0664)
	}
	_, err = out.Write(message)
	return err
}

type embedImageOpts struct {
	sourceImage    string
	payloadImage   string
	outputImage    string
	threshold      int
	pngCompression string
}

func embedImageCommand() *cobra.Command {
	opts := embedImageOpts{}

	command := &cobra.Command{
		Use:     "embed-image",
		Example: "lsbkit image embed-image --image cover.png --payload logo.png --threshold 100 --output-file output.png",
		Short:   "Hide a black and white version of an image in the top left corner of a cover image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EmbedImageInImage(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	command.Flags().StringVar(&opts.sourceImage, "image", "", "Cover image, at least as large as the payload in both dimensions")
	command.Flags().StringVar(&opts.payloadImage, "payload", "", "Image to hide. Pixels with a gray level at or above the threshold become white, the others black")
	command.Flags().StringVar(&opts.outputImage, "output-file", "", "Path of the generated image, ending in .png or .bmp")
	command.Flags().IntVar(&opts.threshold, "threshold", config.DefaultThreshold, "Gray level threshold, 0 to 256")
	command.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")

	MarkFlagsRequired(command, "image", "payload", "output-file")
	return command
}

func EmbedImageInImage(ctx context.Context, out io.Writer, opts embedImageOpts) error {
	format, err := imageio.FormatFromPath(opts.outputImage)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Reading images "
	s.Start()
	defer s.Stop()

	payload, _, err := imageio.ReadFile(opts.payloadImage)
	if err != nil {
		return err
	}
	cover, closeCover, err := openInputFile(opts.sourceImage)
	if err != nil {
		return err
	}
	embedder, err := workflow.NewEmbedder(cover, config.EmbedConfig{
		Threshold:           opts.threshold,
		PngCompressionLevel: mapPngCompression(opts.pngCompression),
	}, nil)
	closeCover()
	if err != nil {
		return err
	}

	setSpinnerPrefix(s, "Embedding image ")
	if err = embedder.EmbedImage(ctx, payload); err != nil {
		return err
	}

	setSpinnerPrefix(s, "Generating output image ")
	if err = writeEmbedderOutput(embedder, opts.outputImage, format); err != nil {
		return err
	}
	s.Stop()

	fmt.Fprintf(out, "Generated %s with %s embedded\n", opts.outputImage, opts.payloadImage)
	printEmbedStats(out, embedder.Stats())
	return nil
}

func revealImageCommand() *cobra.Command {
	var sourceImage, outputImage string

	command := &cobra.Command{
		Use:     "reveal-image",
		Example: "lsbkit image reveal-image --image output.png --output-file revealed.png",
		Short:   "Reveal the black and white image hidden in a square image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RevealImageFromImage(cmd.Context(), cmd.OutOrStdout(), sourceImage, outputImage)
		},
	}

	command.Flags().StringVar(&sourceImage, "image", "", "Square image holding the hidden image")
	command.Flags().StringVar(&outputImage, "output-file", "", "Path of the revealed image, ending in .png or .bmp")

	MarkFlagsRequired(command, "image", "output-file")
	return command
}

func RevealImageFromImage(ctx context.Context, out io.Writer, sourceImage, outputImage string) error {
	if _, err := imageio.FormatFromPath(outputImage); err != nil {
		return err
	}

	input, closeInput, err := openInputFile(sourceImage)
	if err != nil {
		return err
	}
	revealer, err := workflow.NewRevealer(input, nil, false)
	closeInput()
	if err != nil {
		return err
	}

	revealed, err := revealer.RevealImage(ctx)
	if err != nil {
		return err
	}
	if err = imageio.WriteFile(outputImage, revealed, mapPngCompression("default")); err != nil {
		return err
	}
	fmt.Fprintf(out, "Revealed image written to %s\n", outputImage)
	return nil
}

type convertOpts struct {
	sourceImage string
	outputImage string
	mode        string
	threshold   int
}

func convertImageCommand() *cobra.Command {
	opts := convertOpts{}

	command := &cobra.Command{
		Use:     "convert",
		Example: "lsbkit image convert --image photo.jpg --mode binary --threshold 100 --output-file photo-bw.png",
		Short:   "Convert an image to grayscale or black and white",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ConvertImage(cmd.OutOrStdout(), opts)
		},
	}

	command.Flags().StringVar(&opts.sourceImage, "image", "", "Image to convert")
	command.Flags().StringVar(&opts.outputImage, "output-file", "", "Path of the converted image, ending in .png or .bmp")
	command.Flags().StringVar(&opts.mode, "mode", "gray", "Conversion to apply. Options are gray, binary")
	command.Flags().IntVar(&opts.threshold, "threshold", config.DefaultThreshold, "Gray level threshold for binary mode")

	MarkFlagsRequired(command, "image", "output-file")
	return command
}

func ConvertImage(out io.Writer, opts convertOpts) error {
	start := time.Now()
	src, _, err := imageio.ReadFile(opts.sourceImage)
	if err != nil {
		return err
	}

	gray, err := image.ToGray(src)
	if err != nil {
		return err
	}

	var converted image.ARGBImage
	switch opts.mode {
	case "gray":
		converted, err = image.FromGray(gray)
	case "binary":
		var binary image.BinaryImage
		if binary, err = image.ToBinary(gray, opts.threshold); err == nil {
			converted, err = image.FromBinary(binary)
		}
	default:
		return fmt.Errorf("unknown conversion mode %q, use gray or binary", opts.mode)
	}
	if err != nil {
		return err
	}

	if err = imageio.WriteFile(opts.outputImage, converted, mapPngCompression("default")); err != nil {
		return err
	}
	fmt.Fprintf(out, "Converted %s to %s in %s\n", opts.sourceImage, opts.mode, time.Since(start))
	return nil
}
