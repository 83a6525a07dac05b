package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/bluettduncanj/bigrational/logger"
	"github.com/bluettduncanj/bigrational/rational"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v4"
)

func reduceCmd(c *cli.Context) error {
	n, ok := new(big.Int).SetString(c.String("numerator"), 10)
	if !ok {
		return fmt.Errorf("invalid numerator %q", c.String("numerator"))
	}
	d, ok := new(big.Int).SetString(c.String("denominator"), 10)
	if !ok {
		return fmt.Errorf("invalid denominator %q", c.String("denominator"))
	}
	r, err := rational.New(n, d)
	if err != nil {
		return err
	}
	logger.Verbosef("reduce %s/%s => %s", n, d, r)
	fmt.Println(r.String())
	return nil
}

func compareCmd(c *cli.Context) error {
	a, err := rational.NewFromString(c.String("left"))
	if err != nil {
		return err
	}
	b, err := rational.NewFromString(c.String("right"))
	if err != nil {
		return err
	}
	logger.Verbosef("compare %s %s", a, b)
	fmt.Println(a.Cmp(b))
	return nil
}

func encodeCmd(c *cli.Context) error {
	r, err := rational.NewFromString(c.String("value"))
	if err != nil {
		return err
	}
	raw, err := msgpack.Marshal(r)
	if err != nil {
		return err
	}
	logger.Verbosef("encode %s", r)
	fmt.Println(hex.EncodeToString(raw))
	return nil
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var r rational.Rational
	err = msgpack.Unmarshal(raw, &r)
	if err != nil {
		return err
	}
	data, err := json.Marshal(&r)
	if err != nil {
		return err
	}
	logger.Verbosef("decode %s", r.String())
	fmt.Println(string(data))
	return nil
}
