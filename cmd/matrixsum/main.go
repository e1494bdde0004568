// Command matrixsum computes the row sums of a w x k matrix by pipelining
// each row through a fixed chain of k actors, one per column, with each
// cell's contribution delayed by a configurable number of milliseconds to
// simulate uneven per-cell work. Rows are fed into the chain concurrently:
// the chain's actors never run more than one message at a time, so later
// rows queue behind earlier ones at whichever column is currently busy.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lguibr/bollywood"
)

const kindCount = bollywood.FirstUserKind

// rowCursor tracks one row's sum as it threads through the column chain.
type rowCursor struct {
	row int
	sum int32
}

func readMatrix(r *bufio.Reader) (w, k int, matrix, delays [][]int32, err error) {
	if _, err = fmt.Fscan(r, &w, &k); err != nil {
		return 0, 0, nil, nil, fmt.Errorf("read dimensions: %w", err)
	}
	matrix = make([][]int32, w)
	delays = make([][]int32, w)
	for i := 0; i < w; i++ {
		matrix[i] = make([]int32, k)
		delays[i] = make([]int32, k)
		for j := 0; j < k; j++ {
			if _, err = fmt.Fscan(r, &matrix[i][j], &delays[i][j]); err != nil {
				return 0, 0, nil, nil, fmt.Errorf("read cell (%d,%d): %w", i, j, err)
			}
		}
	}
	return w, k, matrix, delays, nil
}

func runMatrixSum(w, k int, matrix, delays [][]int32) ([]int32, error) {
	sums := make([]int32, w)
	columnIDs := make([]bollywood.ActorID, 0, k)
	ready := make(chan struct{})
	var rowsDone int32

	e := bollywood.NewEngine()

	column := &bollywood.Role{NPrompts: int(kindCount) + 1, Prompts: make([]bollywood.Handler, kindCount+1)}
	column.Prompts[bollywood.Hello] = func(state *any, nbytes int, data any) {
		col := len(columnIDs)
		columnIDs = append(columnIDs, bollywood.Self())
		*state = col
		if len(columnIDs) < k {
			e.Send(bollywood.Self(), bollywood.Message{Kind: bollywood.Spawn, Data: column})
		} else {
			close(ready)
		}
	}
	column.Prompts[kindCount] = func(state *any, nbytes int, data any) {
		col := (*state).(int)
		cur := data.(*rowCursor)

		time.Sleep(time.Duration(delays[cur.row][col]) * time.Millisecond)
		cur.sum += matrix[cur.row][col]

		if col < k-1 {
			e.Send(columnIDs[col+1], bollywood.Message{Kind: kindCount, Data: cur})
			return
		}

		sums[cur.row] = cur.sum
		if atomic.AddInt32(&rowsDone, 1) == int32(w) {
			for _, id := range columnIDs {
				e.Send(id, bollywood.Message{Kind: bollywood.GoDie})
			}
		}
	}

	first, err := e.Create(column)
	if err != nil {
		return nil, fmt.Errorf("create actor system: %w", err)
	}
	<-ready

	g, _ := errgroup.WithContext(context.Background())
	for row := 0; row < w; row++ {
		row := row
		g.Go(func() error {
			status := e.Send(columnIDs[0], bollywood.Message{Kind: kindCount, Data: &rowCursor{row: row}})
			if status != bollywood.Accepted {
				return fmt.Errorf("send row %d: status %d", row, status)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.Join(first)
	return sums, nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "matrixsum",
		Short: "Sum the rows of a matrix read from stdin",
		Long: "Reads \"w k\" followed by w*k pairs of \"value delay_ms\" from stdin " +
			"and prints each row's sum, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			w, k, matrix, delays, err := readMatrix(bufio.NewReader(os.Stdin))
			if err != nil {
				return err
			}
			sums, err := runMatrixSum(w, k, matrix, delays)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "run=%s w=%d k=%d\n", runID, w, k)
			for _, s := range sums {
				fmt.Println(s)
			}
			return nil
		},
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
