package pagetable

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Victorgalves/VirtualMemory/mem/vm"
)

func framesMustBeUnique(t vm.PageTable) {
	seen := make(map[int]vm.PageKey)
	for _, p := range t.Pages() {
		other, dup := seen[p.Frame]
		Expect(dup).To(BeFalse(),
			"pages %d and %d share frame %d", other, p.VPN, p.Frame)
		seen[p.Frame] = p.VPN
	}
}

var _ = Describe("Policy", func() {
	It("should parse fifo and lru", func() {
		p, err := ParsePolicy("fifo")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(PolicyFIFO))

		p, err = ParsePolicy(" LRU ")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(PolicyLRU))
	})

	It("should reject anything else", func() {
		_, err := ParsePolicy("optimal")
		Expect(err).To(MatchError(ErrUnknownPolicy))

		_, err = ParsePolicy("")
		Expect(err).To(MatchError(ErrUnknownPolicy))
	})

	It("should build the table of the policy", func() {
		Expect(MakeBuilder().Build().Policy()).To(Equal(PolicyFIFO))
		Expect(MakeBuilder().WithPolicy(PolicyLRU).Build().Policy()).
			To(Equal(PolicyLRU))
		Expect(MakeBuilder().Build().Capacity()).To(Equal(128))
	})

	It("should refuse a table without frames", func() {
		Expect(func() { MakeBuilder().WithCapacity(0).Build() }).To(Panic())
	})
})

var _ = Describe("FIFO page table", func() {
	var table Table

	BeforeEach(func() {
		table = MakeBuilder().WithPolicy(PolicyFIFO).Build()
	})

	It("should assign frames in insertion order", func() {
		for i := 0; i < 3; i++ {
			frame, _, evicted := table.FaultIn(vm.Page{VPN: vm.PageKey(10 + i)})
			Expect(frame).To(Equal(i))
			Expect(evicted).To(BeFalse())
		}

		page, found := table.Find(11)
		Expect(found).To(BeTrue())
		Expect(page.Frame).To(Equal(1))
		Expect(table.Len()).To(Equal(3))
		Expect(table.NumFaults()).To(Equal(uint64(3)))
	})

	It("should replace the first inserted page on wraparound", func() {
		capacity := table.Capacity()
		for i := 1; i <= capacity; i++ {
			table.FaultIn(vm.Page{VPN: vm.PageKey(i)})
		}

		frame, evicted, wasEvicted := table.FaultIn(
			vm.Page{VPN: vm.PageKey(capacity + 1)})

		Expect(wasEvicted).To(BeTrue())
		Expect(evicted.VPN).To(Equal(vm.PageKey(1)))
		Expect(frame).To(Equal(0))

		_, found := table.Find(1)
		Expect(found).To(BeFalse())

		page, found := table.Find(vm.PageKey(capacity + 1))
		Expect(found).To(BeTrue())
		Expect(page.Frame).To(Equal(0))
		Expect(table.Len()).To(Equal(capacity))
		framesMustBeUnique(table)
	})

	It("should ignore accesses when choosing the victim", func() {
		small := MakeBuilder().WithCapacity(2).Build()
		small.FaultIn(vm.Page{VPN: 1})
		small.FaultIn(vm.Page{VPN: 2})
		small.Find(1)

		_, evicted, _ := small.FaultIn(vm.Page{VPN: 3})

		Expect(evicted.VPN).To(Equal(vm.PageKey(1)))
	})

	It("should panic when faulting in a resident page", func() {
		table.FaultIn(vm.Page{VPN: 1})

		Expect(func() { table.FaultIn(vm.Page{VPN: 1}) }).To(Panic())
	})

	It("should keep frames unique over a long run", func() {
		small := MakeBuilder().WithCapacity(5).Build()
		for i := 0; i < 100; i++ {
			vpn := vm.PageKey(i * 7 % 13)
			if _, found := small.Find(vpn); !found {
				small.FaultIn(vm.Page{VPN: vpn})
			}
			framesMustBeUnique(small)
		}
	})
})

var _ = Describe("LRU page table", func() {
	var table Table

	BeforeEach(func() {
		table = MakeBuilder().WithPolicy(PolicyLRU).WithCapacity(2).Build()
	})

	It("should evict the least recently used page", func() {
		a, b, c := vm.PageKey(0xA), vm.PageKey(0xB), vm.PageKey(0xC)

		frameA, _, _ := table.FaultIn(vm.Page{VPN: a})
		frameB, _, _ := table.FaultIn(vm.Page{VPN: b})
		_, found := table.Find(a)
		Expect(found).To(BeTrue())

		frameC, evicted, wasEvicted := table.FaultIn(vm.Page{VPN: c})

		Expect(table.NumFaults()).To(Equal(uint64(3)))
		Expect(wasEvicted).To(BeTrue())
		Expect(evicted.VPN).To(Equal(b))
		Expect(frameC).To(Equal(frameB))

		page, found := table.Find(a)
		Expect(found).To(BeTrue())
		Expect(page.Frame).To(Equal(frameA))
		_, found = table.Find(b)
		Expect(found).To(BeFalse())
	})

	It("should evict pages in access order when nothing is reused", func() {
		table = MakeBuilder().WithPolicy(PolicyLRU).WithCapacity(4).Build()

		var evictedOrder []vm.PageKey
		for i := 0; i < 10; i++ {
			_, evicted, wasEvicted := table.FaultIn(vm.Page{VPN: vm.PageKey(i)})
			if wasEvicted {
				evictedOrder = append(evictedOrder, evicted.VPN)
			}
		}

		Expect(evictedOrder).To(Equal([]vm.PageKey{0, 1, 2, 3, 4, 5}))
	})

	It("should reuse frames in place", func() {
		table = MakeBuilder().WithPolicy(PolicyLRU).WithCapacity(3).Build()
		for i := 0; i < 3; i++ {
			table.FaultIn(vm.Page{VPN: vm.PageKey(i)})
		}

		table.Find(0)
		frame, evicted, _ := table.FaultIn(vm.Page{VPN: 9})

		Expect(evicted.VPN).To(Equal(vm.PageKey(1)))
		Expect(frame).To(Equal(1))
		Expect(table.Pages()).To(HaveLen(3))
		framesMustBeUnique(table)
	})

	It("should break timestamp ties by insertion order", func() {
		lru := newLRUTable(2)
		lru.FaultIn(vm.Page{VPN: 1})
		lru.FaultIn(vm.Page{VPN: 2})
		lru.lastAccess[0] = 5
		lru.lastAccess[1] = 5

		_, evicted, _ := lru.FaultIn(vm.Page{VPN: 3})

		Expect(evicted.VPN).To(Equal(vm.PageKey(1)))
	})

	It("should not advance the clock on a miss", func() {
		lru := newLRUTable(2)
		lru.Find(1)
		Expect(lru.clock).To(Equal(uint64(0)))

		lru.FaultIn(vm.Page{VPN: 1})
		lru.Find(1)
		Expect(lru.clock).To(Equal(uint64(2)))
	})
})
