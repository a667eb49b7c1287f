package main

import (
	"fmt"

	"github.com/coregx/reactor"
)

func main() {
	demoBasicPropagation()
	demoMultiOutput()
	demoObserverGating()
	demoDeferredCommit()
	demoDerivedVar()
	fmt.Println("\n=== Demo Complete ===")
}

func demoBasicPropagation() {
	fmt.Println("=== Phase 1: Basic Propagation ===")

	d := reactor.NewDAG()
	wc := d.Write()

	v1 := reactor.NewVar(d, 1, reactor.WithName("v1"))
	v2 := reactor.NewVar(d, "hello", reactor.WithName("v2"))

	c1 := reactor.NewCRx(d, func(rc *reactor.ReadContext) int {
		return v1.Get(rc) * 2
	}, reactor.WithName("c1"))

	c2 := reactor.NewCRx(d, func(rc *reactor.ReadContext) string {
		return fmt.Sprintf("%s-%d", v2.Get(rc), c1.Get(rc)*2)
	}, reactor.WithName("c2"))

	rc := d.Now()
	fmt.Printf("c1=%d, c2=%q\n", c1.Get(rc), c2.Get(rc))

	v1.Set(wc, 3)
	v2.Set(wc, "rust")
	rc = d.Now()
	fmt.Printf("After set: c1=%d, c2=%q\n", c1.Get(rc), c2.Get(rc))

	fmt.Print(d.Dump(c2.Index()))
}

func demoMultiOutput() {
	fmt.Println("\n=== Phase 2: Multi-output Computed Node ===")

	d := reactor.NewDAG()
	wc := d.Write()

	v2 := reactor.NewVar(d, "hello")
	c3, c4 := reactor.NewCRx2(d, func(rc *reactor.ReadContext) (string, string) {
		s := v2.Get(rc)
		return s[:3], s[3:]
	})

	rc := d.Now()
	fmt.Printf("c3=%q, c4=%q\n", c3.Get(rc), c4.Get(rc))

	v2.Set(wc, "rust-lang")
	rc = d.Now()
	fmt.Printf("After set: c3=%q, c4=%q\n", c3.Get(rc), c4.Get(rc))
}

func demoObserverGating() {
	fmt.Println("\n=== Phase 3: Observer Gating ===")

	d := reactor.NewDAG()
	wc := d.Write()

	v1 := reactor.NewVar(d, 0)
	v2 := reactor.NewVar(d, 0)

	var history []int
	reactor.RunCRx(d, func(rc *reactor.ReadContext) {
		history = append(history, v1.Get(rc)+v2.Get(rc))
	})
	fmt.Println("history after construction:", history)

	v1.Set(wc, 1)
	v2.Set(wc, 2)
	d.Recompute()
	fmt.Println("history after one recompute:", history)
}

func demoDeferredCommit() {
	fmt.Println("\n=== Phase 4: Deferred Commit ===")

	d := reactor.NewDAG()
	wc := d.Write()

	v := reactor.NewVar(d, 0)
	fmt.Println("v via Now():", v.Get(d.Now()))

	v.Set(wc, 5)
	fmt.Println("v via Stale() before recompute:", v.Get(d.Stale()))

	d.Recompute()
	fmt.Println("v via Stale() after recompute:", v.Get(d.Stale()))
}

func demoDerivedVar() {
	fmt.Println("\n=== Phase 5: Derived Variable ===")

	d := reactor.NewDAG()
	wc := d.Write()

	v := reactor.NewVar(d, []byte("abc"))
	dv := reactor.Derive(v,
		func(b []byte) byte { return b[0] },
		func(b []byte, head byte) []byte {
			out := append([]byte(nil), b...)
			out[0] = head
			return out
		},
	)

	dv.Set(wc, 'x')
	rc := d.Now()
	fmt.Printf("dv=%q, v=%q\n", dv.Get(rc), v.Get(rc))
}
