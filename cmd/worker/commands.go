package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spiritupbro/human-protocol/codec"
	"github.com/spiritupbro/human-protocol/rpc/reputation"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errMissingInput = errors.New("missing hex-encoded worker argument")

func newApp(log *zap.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "worker"
	app.Usage = "Encode, decode and inspect reputation contract Worker records"
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "Print canonical hex encoding of a worker",
			UsageText: "worker encode --address <base58|0xhex> --reputation <n> [--strict]",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "address, a", Usage: "Worker account address, base58 or 0x-prefixed hex"},
				cli.Uint64Flag{Name: "reputation, r", Usage: "Raw reputation score"},
				cli.BoolFlag{Name: "strict", Usage: "Reject reputation outside of allowed range"},
				cli.BoolFlag{Name: "clamp", Usage: "Clamp reputation into allowed range"},
			},
			Action: func(c *cli.Context) error { return encodeWorker(c, log) },
		},
		{
			Name:      "decode",
			Usage:     "Decode hex-encoded worker into JSON",
			UsageText: "worker decode <hex>",
			Action:    func(c *cli.Context) error { return decodeWorker(c, log) },
		},
		{
			Name:      "check",
			Usage:     "Decode hex-encoded worker and check its reputation range",
			UsageText: "worker check <hex>",
			Action:    func(c *cli.Context) error { return checkWorker(c, log) },
		},
		{
			Name:  "schema",
			Usage: "Print Worker ABI type entry",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "format, f", Value: "json", Usage: "Output format: json or yaml"},
				cli.BoolFlag{Name: "params", Usage: "Print neo-go manifest parameters instead of ABI types"},
			},
			Action: printSchema,
		},
	}

	return app
}

func encodeWorker(c *cli.Context, log *zap.Logger) error {
	addr, err := reputation.ParseAddress(c.String("address"))
	if err != nil {
		return err
	}

	r := c.Uint64("reputation")
	switch {
	case c.Bool("clamp"):
		if clamped := reputation.ClampReputation(r); clamped != r {
			log.Info("reputation clamped", zap.Uint64("from", r), zap.Uint64("to", clamped))
			r = clamped
		}
	case c.Bool("strict"):
		if err := reputation.CheckReputation(r); err != nil {
			return err
		}
	}

	w := reputation.NewWorker(addr, r)
	if err := reputation.CheckWorker(w); err != nil {
		log.Warn("encoding worker with reputation out of range", zap.Error(err))
	}

	b, err := reputation.EncodeWith(codec.Strict{}, w)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, hex.EncodeToString(b))
	return err
}

func decodeWorker(c *cli.Context, log *zap.Logger) error {
	w, err := readWorker(c)
	if err != nil {
		return err
	}

	if err := reputation.CheckWorker(w); err != nil {
		log.Warn("decoded worker with reputation out of range", zap.Error(err))
	}

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal worker: %w", err)
	}

	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func checkWorker(c *cli.Context, log *zap.Logger) error {
	w, err := readWorker(c)
	if err != nil {
		return err
	}

	if err := reputation.CheckWorker(w); err != nil {
		return err
	}

	log.Debug("worker is valid",
		zap.Stringer("address", w.WorkerAddress),
		zap.Uint64("reputation", w.Reputation))

	_, err = fmt.Fprintln(c.App.Writer, "OK")
	return err
}

func printSchema(c *cli.Context) error {
	var (
		v   any = reputation.WorkerSchema().Types()
		err error
	)

	if c.Bool("params") {
		v, err = reputation.WorkerSchema().Parameters()
		if err != nil {
			return err
		}
	}

	var data []byte
	switch f := c.String("format"); f {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	_, err = c.App.Writer.Write(data)
	return err
}

func readWorker(c *cli.Context) (reputation.Worker, error) {
	s := c.Args().First()
	if s == "" {
		return reputation.Worker{}, errMissingInput
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return reputation.Worker{}, fmt.Errorf("invalid hex: %w", err)
	}

	return reputation.Decode(b)
}
