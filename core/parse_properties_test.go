package core_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/unmanned-player/clip/core"
)

type event struct {
	Opt   string
	Value string
}

func propParser(events *[]event) *core.Parser {
	return &core.Parser{
		Name: "prop",
		Base: &core.SubCommand{Options: []core.Option{
			core.NewSwitch('a', "alpha", "Switch"),
			core.NewSwitch('b', "beta", "Switch"),
			core.NewSwitch('c', "gamma", "Switch"),
			core.NewValue('o', "opt", "V", "Value"),
		}},
		Out: &bytes.Buffer{},
		Callback: func(p *core.Parser, cmd *core.SubCommand, opt *core.Option, value string) error {
			*events = append(*events, event{Opt: opt.Long, Value: value})
			return nil
		},
	}
}

// genValue draws values that cannot be mistaken for option tokens or
// argument-file references.
func genValue(t *rapid.T) string {
	v := rapid.StringMatching(`[A-Za-z0-9./_:,+-]{1,24}`).Draw(t, "value")
	if strings.HasPrefix(v, "-") || strings.HasPrefix(v, "@") {
		v = "x" + v
	}
	return v
}

func TestParse_InlineAndSeparateValueAgree(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)
		v := genValue(rt)

		var inline, separate []event
		oc, err := core.Parse(propParser(&inline), []string{"prop", "--opt=" + v}, nil)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(oc).To(Equal(core.Ok))

		oc, err = core.Parse(propParser(&separate), []string{"prop", "--opt", v}, nil)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(oc).To(Equal(core.Ok))

		g.Expect(inline).To(Equal(separate))
		g.Expect(inline).To(Equal([]event{{Opt: "opt", Value: v}}))
	})
}

func TestParse_ClusterEqualsSeparateSwitches(t *testing.T) {
	shorts := []rune{'a', 'b', 'c'}

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)
		picks := rapid.SliceOfN(rapid.SampledFrom(shorts), 1, 8).Draw(rt, "picks")

		cluster := "-"
		var separate []string
		for _, r := range picks {
			cluster += string(r)
			separate = append(separate, "-"+string(r))
		}

		var fromCluster, fromSeparate []event
		oc, err := core.Parse(propParser(&fromCluster), append([]string{"prop"}, cluster), nil)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(oc).To(Equal(core.Ok))

		oc, err = core.Parse(propParser(&fromSeparate), append([]string{"prop"}, separate...), nil)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(oc).To(Equal(core.Ok))

		g.Expect(fromCluster).To(Equal(fromSeparate))
		g.Expect(fromCluster).To(HaveLen(len(picks)))
	})
}

func TestParse_NothingDispatchedAfterFailure(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)
		before := rapid.IntRange(0, 5).Draw(rt, "before")
		after := rapid.IntRange(0, 5).Draw(rt, "after")

		args := []string{"prop"}
		for i := 0; i < before; i++ {
			args = append(args, "--alpha")
		}
		args = append(args, "--bogus")
		for i := 0; i < after; i++ {
			args = append(args, "--beta")
		}

		var events []event
		oc, err := core.Parse(propParser(&events), args, nil)
		g.Expect(err).To(HaveOccurred())
		g.Expect(oc).To(Equal(core.Invalid))
		g.Expect(events).To(HaveLen(before))
		for _, e := range events {
			g.Expect(e.Opt).To(Equal("alpha"))
		}
	})
}

func TestParse_CallbackAbortStopsAtInjectedPoint(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)
		total := rapid.IntRange(1, 8).Draw(rt, "total")
		abortAt := rapid.IntRange(1, total).Draw(rt, "abortAt")

		args := []string{"prop"}
		for i := 0; i < total; i++ {
			args = append(args, "--alpha")
		}

		calls := 0
		p := propParser(new([]event))
		p.Callback = func(*core.Parser, *core.SubCommand, *core.Option, string) error {
			calls++
			if calls == abortAt {
				return fmt.Errorf("abort")
			}
			return nil
		}

		oc, err := core.Parse(p, args, nil)
		g.Expect(err).To(HaveOccurred())
		g.Expect(oc).To(Equal(core.CallbackFailed))
		g.Expect(calls).To(Equal(abortAt))
	})
}
