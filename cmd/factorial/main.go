// Command factorial computes n! through a chain of actors, one per
// multiplicand, mirroring the recursive spawn-and-callback pattern the
// runtime's scheduler core was built to run correctly under concurrency.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lguibr/bollywood"
)

const (
	kindClear bollywood.Kind = iota + bollywood.FirstUserKind
	kindCallback
	kindInit
	kindCount
)

// step is the per-actor computation state: which multiplicand this actor
// represents, whether it is the root (no parent to report back to), and
// whether it is the last link in the chain.
type step struct {
	first  bool
	last   bool
	parent bollywood.ActorID
	id     bollywood.ActorID
	n      uint64
	limit  uint64
	result *uint64
}

type initPayload struct {
	target uint64
	result *uint64
}

func buildRoles(e *bollywood.Engine) (root, link *bollywood.Role) {
	root = &bollywood.Role{NPrompts: int(kindCount) + 1, Prompts: make([]bollywood.Handler, kindCount+1)}
	link = &bollywood.Role{NPrompts: int(kindCount) + 1, Prompts: make([]bollywood.Handler, kindCount+1)}

	clear := func(state *any, nbytes int, data any) {
		s := (*state).(*step)
		if !s.first {
			e.Send(s.parent, bollywood.Message{Kind: kindClear})
		}
		e.Send(bollywood.Self(), bollywood.Message{Kind: bollywood.GoDie})
	}
	// callback runs on the parent with a pointer straight into its
	// child's state. Safe only because the child sent it while waiting
	// idle for kindCount and accepts no other message in the meantime.
	callback := func(state *any, nbytes int, data any) {
		me := (*state).(*step)
		son := data.(*step)
		son.n = me.n + 1
		son.limit = me.limit
		son.first = false
		son.last = son.n == son.limit
		son.result = me.result
		e.Send(son.id, bollywood.Message{Kind: kindCount})
	}

	root.Prompts[bollywood.Hello] = func(state *any, nbytes int, data any) {
		*state = &step{first: true, id: bollywood.Self()}
	}
	root.Prompts[kindClear] = clear
	root.Prompts[kindCallback] = callback
	root.Prompts[kindInit] = func(state *any, nbytes int, data any) {
		s := (*state).(*step)
		p := data.(*initPayload)
		s.limit = p.target
		s.result = p.result
		e.Send(bollywood.Self(), bollywood.Message{Kind: bollywood.Spawn, Data: link})
	}

	link.Prompts[bollywood.Hello] = func(state *any, nbytes int, data any) {
		s := &step{parent: data.(bollywood.ActorID), id: bollywood.Self()}
		*state = s
		e.Send(s.parent, bollywood.Message{Kind: kindCallback, Data: s})
	}
	link.Prompts[kindClear] = clear
	link.Prompts[kindCallback] = callback
	link.Prompts[kindCount] = func(state *any, nbytes int, data any) {
		s := (*state).(*step)
		*s.result *= s.n
		if s.last {
			e.Send(bollywood.Self(), bollywood.Message{Kind: kindClear})
		} else {
			e.Send(bollywood.Self(), bollywood.Message{Kind: bollywood.Spawn, Data: link})
		}
	}

	return root, link
}

func runFactorial(n uint64) (uint64, error) {
	result := uint64(1)
	e := bollywood.NewEngine()

	root, _ := buildRoles(e)
	first, err := e.Create(root)
	if err != nil {
		return 0, fmt.Errorf("create actor system: %w", err)
	}

	if n > 0 {
		status := e.Send(first, bollywood.Message{
			Kind: kindInit,
			Data: &initPayload{target: n, result: &result},
		})
		if status != bollywood.Accepted {
			return 0, fmt.Errorf("send init: status %d", status)
		}
	} else {
		if status := e.Send(first, bollywood.Message{Kind: kindClear}); status != bollywood.Accepted {
			return 0, fmt.Errorf("send clear: status %d", status)
		}
	}

	e.Join(first)
	return result, nil
}

func main() {
	var n uint64

	cmd := &cobra.Command{
		Use:   "factorial",
		Short: "Compute n! using an actor chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			result, err := runFactorial(n)
			if err != nil {
				return err
			}
			fmt.Printf("run=%s n=%d result=%d\n", runID, n, result)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&n, "n", 5, "compute n factorial")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
