package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HookableBase", func() {
	var (
		base   *HookableBase
		posA   = &HookPos{Name: "A"}
		posB   = &HookPos{Name: "B"}
		called []string
	)

	BeforeEach(func() {
		base = &HookableBase{}
		called = nil
	})

	It("should invoke hooks in registration order", func() {
		base.AcceptHook(NewHookFunc(func(ctx HookCtx) {
			called = append(called, "first:"+ctx.Pos.Name)
		}))
		base.AcceptHook(NewHookFunc(func(ctx HookCtx) {
			called = append(called, "second:"+ctx.Pos.Name)
		}))

		base.InvokeHook(HookCtx{Pos: posA})

		Expect(base.NumHooks()).To(Equal(2))
		Expect(called).To(Equal([]string{"first:A", "second:A"}))
	})

	It("should refuse the same hook twice", func() {
		hook := NewPosCountTracer()
		base.AcceptHook(hook)

		Expect(func() { base.AcceptHook(hook) }).To(Panic())
	})

	It("should count positions", func() {
		tracer := NewPosCountTracer()
		base.AcceptHook(tracer)

		base.InvokeHook(HookCtx{Pos: posB})
		base.InvokeHook(HookCtx{Pos: posA})
		base.InvokeHook(HookCtx{Pos: posB})

		Expect(tracer.GetPosNames()).To(Equal([]string{"B", "A"}))
		Expect(tracer.GetPosCount(posA)).To(Equal(uint64(1)))
		Expect(tracer.GetPosCount(posB)).To(Equal(uint64(2)))
		Expect(tracer.Counts()).To(HaveKeyWithValue("B", uint64(2)))
	})
})
