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
	"log/slog"
	"os"

	"github.com/0xsoniclabs/stf/common/amount"
	"github.com/0xsoniclabs/stf/runtime"
	"github.com/0xsoniclabs/stf/store"
	"github.com/urfave/cli/v2"
)

var (
	storeFlag = cli.StringFlag{
		Name:  "store",
		Usage: "store implementation backing the pallets (memory or leveldb)",
		Value: string(store.Memory),
	}
	exportFlag = cli.StringFlag{
		Name:  "export",
		Usage: "file to write a compressed snapshot of the final state to",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every executed block",
	}
)

var Run = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "executes the example chain and prints the resulting state",
	Flags: []cli.Flag{
		&storeFlag,
		&exportFlag,
		&verboseFlag,
	},
}

const (
	alice   = runtime.AccountID("alice")
	bob     = runtime.AccountID("bob")
	charlie = runtime.AccountID("charlie")
)

// exampleChain lists the blocks executed by the run command.
func exampleChain() []runtime.Block {
	return []runtime.Block{
		{
			Header: runtime.Header{BlockNumber: 1},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.Transfer(bob, amount.New(30))},
				{Caller: alice, Call: runtime.CreateClaim("blablub")},
			},
		},
		{
			Header: runtime.Header{BlockNumber: 2},
			Extrinsics: []runtime.Extrinsic{
				{Caller: alice, Call: runtime.Transfer(charlie, amount.New(20))},
				// fails, bob has no claim to revoke
				{Caller: bob, Call: runtime.RevokeClaim("blablub")},
			},
		},
	}
}

func run(context *cli.Context) (err error) {
	level := slog.LevelInfo
	if context.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(context.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	rt, err := runtime.NewRuntime(runtime.Parameters{
		Store:   store.Kind(context.String(storeFlag.Name)),
		Logger:  logger,
		Genesis: map[runtime.AccountID]runtime.Balance{alice: amount.New(100)},
	})
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rt.Close())
	}()

	for _, block := range exampleChain() {
		if err := rt.ExecuteBlock(block); err != nil {
			return fmt.Errorf("failed to execute block %v: %w", block.Header.BlockNumber, err)
		}
	}

	snapshot, err := rt.Snapshot()
	if err != nil {
		return err
	}
	if err := printSnapshot(context.App.Writer, snapshot); err != nil {
		return err
	}

	if path := context.String(exportFlag.Name); path != "" {
		if err := export(context, rt, path); err != nil {
			return err
		}
		fmt.Fprintf(context.App.Writer, "Exported state to %s\n", path)
	}
	return nil
}

func export(context *cli.Context, rt *runtime.Runtime, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	_, err = rt.Export(context.Context, file)
	return err
}
