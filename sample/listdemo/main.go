package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/YaoZengzeng/yulist/ilist"
)

type keyNode struct {
	key	int
	ilist.Entry[keyNode]
}

type keyList = ilist.List[keyNode, ilist.EntryMark[keyNode, *keyNode]]

func main() {
	app := &cli.App{
		Name:	"listdemo",
		Usage:	"link key nodes into an intrusive list, then print and unlink them",
		Flags:	[]cli.Flag{
			&cli.IntFlag{
				Name:		"count",
				Aliases:	[]string{"n"},
				Usage:		"number of key nodes",
				Value:		3,
				EnvVars:	[]string{"LISTDEMO_COUNT"},
			},
		},
		Action:	func(c *cli.Context) error {
			return run(os.Stdout, c.Int("count"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// run links count nodes at the back of a list in key order, then walks the
// list printing each node and unlinking it
func run(w io.Writer, count int) error {
	if count < 0 {
		return errors.Errorf("count must not be negative, got %d", count)
	}

	nodes := make([]keyNode, count)
	var keys keyList
	keys.Init()

	for i := range nodes {
		nodes[i].key = i
		if err := keys.PushBack(&nodes[i]); err != nil {
			return errors.Wrapf(err, "push node %d", i)
		}
	}

	i := 0
	for node := range keys.AllSafe() {
		if _, err := fmt.Fprintf(w, "node %d has key %d\n", i, node.key); err != nil {
			return errors.Wrap(err, "write")
		}
		if err := keys.Remove(node); err != nil {
			return errors.Wrapf(err, "unlink node %d", i)
		}
		i++
	}

	if !keys.Empty() {
		return errors.New("list not empty after unlinking every node")
	}
	return nil
}
