package packstat_test

import (
	"math/rand"

	"github.com/bsm/packstat"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tally", func() {
	It("should accumulate counts", func() {
		var tally packstat.Tally
		tally.Add(packstat.TagDirect)
		tally.Add(packstat.TagDirect)
		tally.Add(packstat.TagBranch2)

		Expect(tally.Count(packstat.TagDirect)).To(Equal(int64(2)))
		Expect(tally.Count(packstat.TagBranch2)).To(Equal(int64(1)))
		Expect(tally.Count(packstat.TagWide)).To(Equal(int64(0)))
		Expect(tally.Total()).To(Equal(int64(3)))
	})

	It("should be order-independent", func() {
		tags := make([]packstat.Tag, 0, 70)
		for tag := packstat.Tag(0); tag < packstat.NumTags; tag++ {
			for i := packstat.Tag(0); i <= tag; i++ {
				tags = append(tags, tag)
			}
		}

		var fwd packstat.Tally
		for _, tag := range tags {
			fwd.Add(tag)
		}

		rnd := rand.New(rand.NewSource(33))
		for n := 0; n < 10; n++ {
			rnd.Shuffle(len(tags), func(i, j int) { tags[i], tags[j] = tags[j], tags[i] })

			var cmp packstat.Tally
			for _, tag := range tags {
				cmp.Add(tag)
			}
			Expect(cmp).To(Equal(fwd))
		}
	})

	It("should merge", func() {
		var a, b packstat.Tally
		a.Add(packstat.TagDirect)
		a.Add(packstat.TagBranch1)
		b.Add(packstat.TagBranch1)
		b.Add(packstat.TagWide)

		merged := a.Merge(b)
		Expect(merged.Count(packstat.TagDirect)).To(Equal(int64(1)))
		Expect(merged.Count(packstat.TagBranch1)).To(Equal(int64(2)))
		Expect(merged.Count(packstat.TagWide)).To(Equal(int64(1)))
		Expect(merged.Total()).To(Equal(int64(4)))
		Expect(a.Merge(b)).To(Equal(b.Merge(a)))
	})
})
