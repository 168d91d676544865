package isa_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/pioc/isa"
)

func decodeOp(word uint16) isa.Op {
	in, err := isa.Decode(word)
	Expect(err).NotTo(HaveOccurred())
	return in.Op
}

var _ = Describe("Decode priority", func() {
	Describe("low control words", func() {
		It("should decode 0x0000 as NOP", func() {
			Expect(isa.Decode(0x0000)).To(Equal(isa.Make(isa.OP_NOP)))
		})

		It("should decode 0x0008 as CLRWDT", func() {
			Expect(isa.Decode(0x0008)).To(Equal(isa.Make(isa.OP_CLRWDT)))
		})

		It("should decode 0x000C and 0x000F as SLEEPX 0 and 3", func() {
			Expect(isa.Decode(0x000C)).To(Equal(isa.MakeK2(isa.OP_SLEEPX, 0)))
			Expect(isa.Decode(0x000F)).To(Equal(isa.MakeK2(isa.OP_SLEEPX, 3)))
		})
	})

	Describe("overlapping rules", func() {
		It("should let WAITB shadow WAITWR", func() {
			Expect(isa.Decode(0x0014)).To(Equal(isa.MakeWait(isa.OP_WAITB, 4)))
		})

		It("should let MOVA1F win over MOVIP", func() {
			Expect(decodeOp(0x2300)).To(Equal(isa.OP_MOVA1F))
			Expect(decodeOp(0x23FF)).To(Equal(isa.OP_MOVA1F))
			Expect(decodeOp(0x2200)).To(Equal(isa.OP_MOVIP))
			Expect(decodeOp(0x22FF)).To(Equal(isa.OP_MOVIP))
		})

		It("should let MOVA2F and MOVA2P win over MOVIA", func() {
			Expect(decodeOp(0x2400)).To(Equal(isa.OP_MOVIA))
			Expect(decodeOp(0x2500)).To(Equal(isa.OP_MOVA2F))
			Expect(decodeOp(0x2600)).To(Equal(isa.OP_MOVA2P))
		})

		It("should decode 0x27 as MOVA2P, leaving MOVA1P unreachable", func() {
			Expect(isa.Decode(0x2742)).To(Equal(isa.MakeK(isa.OP_MOVA2P, 0x42)))
		})

		It("should let MOVA win over MOV with the destination bit set", func() {
			Expect(decodeOp(0x1000)).To(Equal(isa.OP_MOVA))
			Expect(decodeOp(0x1200)).To(Equal(isa.OP_MOV))
		})

		It("should let the immediate byte ops win over the 10-bit forms", func() {
			Expect(decodeOp(0x2800)).To(Equal(isa.OP_MOVL))
			Expect(decodeOp(0x2000)).To(Equal(isa.OP_RETL))
			Expect(decodeOp(0x2100)).To(Equal(isa.OP_RETLN))
		})
	})

	Describe("the rule table", func() {
		It("should give every matching word to the first rule", func() {
			rules := isa.Rules()
			for n, r := range rules {
				for _, word := range []uint16{r.Value, r.Value | ^r.Mask} {
					first := -1
					for m, q := range rules {
						if word&q.Mask == q.Value {
							first = m
							break
						}
					}
					Expect(first).To(BeNumerically("<=", n))

					in, err := isa.Decode(word)
					if rules[first].Op == isa.OP_UNKNOWN {
						Expect(errors.Is(err, isa.ErrDecode)).To(BeTrue())
						continue
					}
					Expect(err).NotTo(HaveOccurred())
					Expect(in.Op).To(Equal(rules[first].Op))
				}
			}
		})
	})

	Describe("unmatched words", func() {
		It("should report the word", func() {
			_, err := isa.Decode(0x0040)
			Expect(err).To(MatchError(isa.ErrDecode))
			Expect(err).To(Equal(isa.ErrOpcode(0x0040)))
		})
	})
})
