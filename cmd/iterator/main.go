package main

import (
	"fmt"
	"io"
	"os"
	"pattern-lab/domain"
	"pattern-lab/internal"
	"pattern-lab/iterator"
	"strconv"

	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

var staff = []struct {
	name string
	id   int
}{
	{"Natalia", 1000},
	{"Alexander", 1001},
	{"Petr", 1002},
	{"Vasily", 1003},
	{"Ivan", 1004},
	{"Maria", 1005},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	collection := iterator.NewCollection[domain.Employee]()
	for _, s := range staff {
		employee, err := domain.NewEmployee(s.name, s.id)
		if err != nil {
			return err
		}
		collection.Append(employee)
	}

	cursor, err := iterator.NewCursor[domain.Employee](collection, iterator.WithStep(config.CursorStep))
	if err != nil {
		return err
	}
	log.Debug("Walking collection", "count", collection.Count(), "step", config.CursorStep)

	fmt.Println("Walking through the collection:")
	return render(os.Stdout, cursor)
}

// render prints one row per item reached by the cursor.
func render(out io.Writer, cursor *iterator.Cursor[domain.Employee]) error {
	first, err := cursor.First()
	if err != nil {
		return fmt.Errorf("collection is empty: %w", err)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for opt := iterator.Some(first); !cursor.IsExhausted(); opt = cursor.Next() {
		if employee, ok := opt.Get(); ok {
			table.Append([]string{strconv.Itoa(employee.ID), employee.Name})
		}
	}
	table.Render()
	return nil
}
