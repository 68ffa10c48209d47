package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
	"go-smart-calc"
	"go-smart-calc/convert"
	"go-smart-calc/discount"
	"go-smart-calc/expression"
)

// converterFunc builds the converter lazily so only the convert commands
// pay for the rate fetch
type converterFunc func(ctx context.Context) (convert.Service, error)

func newApp(in io.Reader, out io.Writer, converter converterFunc) *cli.App {
	return &cli.App{
		Name:   "smartcalc",
		Usage:  "calculator, currency converter and discount tool",
		Reader: in,
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:      "calc",
				Usage:     "evaluate an arithmetic expression",
				ArgsUsage: "EXPRESSION...",
				Action:    calcAction,
			},
			{
				Name:   "keys",
				Usage:  "keypad session reading one key per line, = evaluates, C clears, q quits",
				Action: keysAction,
			},
			{
				Name:  "convert",
				Usage: "convert an amount between currencies",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "amount", Aliases: []string{"a"}, Required: true},
					&cli.StringFlag{Name: "from", Aliases: []string{"f"}, Value: "USD"},
					&cli.StringFlag{Name: "to", Aliases: []string{"t"}, Value: "PKR"},
				},
				Action: func(c *cli.Context) error {
					conv, err := converter(c.Context)
					if err != nil {
						return err
					}
					ex, err := conv.Convert(c.Context, smartcalc.Amount(c.Float64("amount")), smartcalc.Currency(c.String("from")), smartcalc.Currency(c.String("to")))
					if err != nil {
						fmt.Fprintln(c.App.Writer, smartcalc.Message(err))
						return err
					}
					fmt.Fprintln(c.App.Writer, convert.Format(ex))
					return nil
				},
			},
			{
				Name:  "currencies",
				Usage: "list the currencies the converter knows",
				Action: func(c *cli.Context) error {
					conv, err := converter(c.Context)
					if err != nil {
						return err
					}
					for _, code := range conv.Currencies() {
						fmt.Fprintln(c.App.Writer, code)
					}
					return nil
				},
			},
			{
				Name:  "discount",
				Usage: "apply a percentage discount to a price",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "price", Aliases: []string{"p"}, Required: true},
					&cli.Float64Flag{Name: "percent", Aliases: []string{"d"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					d, err := discount.Calculate(smartcalc.Amount(c.Float64("price")), c.Float64("percent"))
					if err != nil {
						fmt.Fprintln(c.App.Writer, smartcalc.Message(err))
						return err
					}
					fmt.Fprintln(c.App.Writer, discount.Format(d))
					return nil
				},
			},
		},
	}
}

func calcAction(c *cli.Context) error {
	v, err := expression.Eval(strings.Join(c.Args().Slice(), ""))
	if err != nil {
		fmt.Fprintln(c.App.Writer, smartcalc.MsgError)
		return err
	}
	fmt.Fprintln(c.App.Writer, v)
	return nil
}

func keysAction(c *cli.Context) error {
	calc := expression.New()
	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		switch key {
		case "":
			continue
		case "q":
			return nil
		case "C", "c":
			calc.Clear()
		case "=":
			display, _ := calc.Evaluate()
			fmt.Fprintln(c.App.Writer, display)
			continue
		default:
			calc.Append(key)
		}
		fmt.Fprintln(c.App.Writer, calc.Expression())
	}
	return scanner.Err()
}
