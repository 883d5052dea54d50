// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xsoniclabs/stf/runtime"
	"github.com/urfave/cli/v2"
)

var Inspect = cli.Command{
	Action:    inspect,
	Name:      "inspect",
	Usage:     "prints the content of an exported state snapshot",
	ArgsUsage: "<file>",
}

func inspect(context *cli.Context) (err error) {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing snapshot file")
	}
	file, err := os.Open(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	snapshot, err := runtime.ReadSnapshot(file)
	if err != nil {
		return err
	}
	return printSnapshot(context.App.Writer, snapshot)
}

func printSnapshot(out io.Writer, snapshot *runtime.Snapshot) error {
	hash, err := snapshot.Hash()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Block:    %v\n", snapshot.BlockNumber)
	fmt.Fprintf(out, "Hash:     %v\n", hash)
	fmt.Fprintf(out, "Nonces:\n")
	for _, entry := range snapshot.Nonces {
		fmt.Fprintf(out, "  %-10s %v\n", entry.Key, entry.Value)
	}
	fmt.Fprintf(out, "Balances:\n")
	for _, entry := range snapshot.Balances {
		fmt.Fprintf(out, "  %-10s %v\n", entry.Key, entry.Value)
	}
	fmt.Fprintf(out, "Claims:\n")
	for _, entry := range snapshot.Claims {
		fmt.Fprintf(out, "  %-10s %v\n", entry.Key, entry.Value)
	}
	return nil
}
