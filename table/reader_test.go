package table_test

import (
	"bytes"
	"fmt"

	"github.com/bsm/packstat/table"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

var _ = Describe("Reader", func() {
	var subject *table.Reader

	// The following will seed 100 cells with keys key-0000 .. key-0396:
	BeforeEach(func() {
		var err error
		subject, err = seedReader(100, nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should Get/Append", func() {
		for i := 0; i <= 396; i += 4 {
			sfx := fmt.Sprintf("%04d", i)
			Expect(subject.Get(numKey(i))).To(HaveSuffix(sfx), "for %d", i)
		}

		_, err := subject.Get(numKey(1))
		Expect(err).To(MatchError(table.ErrNotFound))
		_, err = subject.Get(numKey(395))
		Expect(err).To(MatchError(table.ErrNotFound))
		_, err = subject.Get(numKey(400))
		Expect(err).To(MatchError(table.ErrNotFound))
		_, err = subject.Get([]byte("zzz"))
		Expect(err).To(MatchError(table.ErrNotFound))
	})

	It("should reject truncated tables", func() {
		_, err := table.NewReader(bytes.NewReader(nil), 0)
		Expect(err).To(MatchError("table: bad magic byte sequence"))
	})

	Describe("Iterator", func() {
		It("should iterate from beginning", func() {
			iter, err := subject.Seek(nil)
			Expect(err).NotTo(HaveOccurred())
			defer iter.Release()

			Expect(iter.More()).To(BeTrue())
			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Key()).To(Equal(numKey(0)))
			Expect(iter.Value()).To(HaveSuffix("0000"))

			Expect(iter.More()).To(BeTrue())
			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Key()).To(Equal(numKey(4)))
			Expect(iter.Value()).To(HaveSuffix("0004"))

			for i := 0; i < 97; i++ {
				Expect(iter.More()).To(BeTrue())
				Expect(iter.Next()).To(BeTrue())
			}

			Expect(iter.More()).To(BeTrue())
			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Key()).To(Equal(numKey(396)))
			Expect(iter.Value()).To(HaveSuffix("0396"))

			Expect(iter.More()).To(BeFalse())
			Expect(iter.Next()).To(BeFalse())
			Expect(iter.Err()).NotTo(HaveOccurred())
		})

		It("should iterate from middle", func() {
			iter, err := subject.Seek(numKey(200))
			Expect(err).NotTo(HaveOccurred())
			defer iter.Release()

			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Key()).To(Equal(numKey(200)))
		})

		It("should start at the next key in between cells", func() {
			iter, err := subject.Seek(numKey(199))
			Expect(err).NotTo(HaveOccurred())
			defer iter.Release()

			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Key()).To(Equal(numKey(200)))
		})

		It("should iterate from last entry", func() {
			iter, err := subject.Seek(numKey(396))
			Expect(err).NotTo(HaveOccurred())
			defer iter.Release()

			Expect(iter.More()).To(BeTrue())
			Expect(iter.Next()).To(BeTrue())
			Expect(iter.Key()).To(Equal(numKey(396)))
			Expect(iter.Value()).To(HaveSuffix("0396"))

			Expect(iter.More()).To(BeFalse())
			Expect(iter.Next()).To(BeFalse())
			Expect(iter.Err()).NotTo(HaveOccurred())
		})

		It("should not iterate when past the end", func() {
			iter, err := subject.Seek([]byte("zzz"))
			Expect(err).NotTo(HaveOccurred())
			defer iter.Release()

			Expect(iter.More()).To(BeFalse())
			Expect(iter.Next()).To(BeFalse())
			Expect(iter.Err()).NotTo(HaveOccurred())
		})
	})
})

var _ = Describe("Reader (single-cell blocks)", func() {
	var subject *table.Reader

	HavePos := func(n int) types.GomegaMatcher {
		return WithTransform(func(x interface{ Pos() int }) int {
			return x.Pos()
		}, Equal(n))
	}

	// a BlockSize of 1 forces a flush after every cell
	BeforeEach(func() {
		var err error
		subject, err = seedReader(10, &table.WriterOptions{
			BlockSize:   1,
			Compression: table.NoCompression,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should init", func() {
		Expect(subject.NumBlocks()).To(Equal(10))
	})

	It("should retrieve blocks", func() {
		b0, err := subject.GetBlock(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(b0.Pos()).To(Equal(0))

		b1, err := subject.GetBlock(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(b1.Pos()).To(Equal(1))

		b0, err = subject.GetBlock(-1)
		Expect(err).NotTo(HaveOccurred())
		Expect(b0.Pos()).To(Equal(0))
	})

	It("should seek blocks", func() {
		Expect(subject.SeekBlock(nil)).To(HavePos(0))
		Expect(subject.SeekBlock(numKey(0))).To(HavePos(0))
		Expect(subject.SeekBlock(numKey(1))).To(HavePos(1))
		Expect(subject.SeekBlock(numKey(4))).To(HavePos(1))
		Expect(subject.SeekBlock(numKey(34))).To(HavePos(9))
		Expect(subject.SeekBlock(numKey(36))).To(HavePos(9))
		Expect(subject.SeekBlock(numKey(37))).To(HavePos(10))
		Expect(subject.SeekBlock([]byte("zzz"))).To(HavePos(10))
	})

	It("should iterate across blocks", func() {
		iter, err := subject.Seek(nil)
		Expect(err).NotTo(HaveOccurred())
		defer iter.Release()

		var keys []string
		for iter.Next() {
			keys = append(keys, string(iter.Key()))
		}
		Expect(iter.Err()).NotTo(HaveOccurred())
		Expect(keys).To(HaveLen(10))
		Expect(keys[0]).To(Equal("key-0000"))
		Expect(keys[9]).To(Equal("key-0036"))
	})
})

var _ = Describe("BlockReader", func() {
	var subject *table.Reader
	var block *table.BlockReader

	// a single huge block with 4-cell sections:
	// S0: key-0000..key-0012, S1: key-0016..key-0028, ...
	BeforeEach(func() {
		var err error
		subject, err = seedReader(100, &table.WriterOptions{
			BlockSize:            1 << 20,
			BlockRestartInterval: 4,
			Compression:          table.NoCompression,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(subject.NumBlocks()).To(Equal(1))

		block, err = subject.GetBlock(0)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should have pos", func() {
		Expect(block.Pos()).To(Equal(0))
	})

	It("should have sections", func() {
		Expect(block.NumSections()).To(Equal(25))
		Expect(block.GetSection(0).Pos()).To(Equal(0))
		Expect(block.GetSection(1).Pos()).To(Equal(1))
		Expect(block.GetSection(25).Pos()).To(Equal(25))
		Expect(block.GetSection(26).Pos()).To(Equal(25))
		Expect(block.GetSection(-1).Pos()).To(Equal(0))
	})

	It("should seek sections", func() {
		Expect(block.SeekSection(nil).Pos()).To(Equal(0))
		Expect(block.SeekSection(numKey(0)).Pos()).To(Equal(0))
		Expect(block.SeekSection(numKey(12)).Pos()).To(Equal(0))
		Expect(block.SeekSection(numKey(15)).Pos()).To(Equal(0))
		Expect(block.SeekSection(numKey(16)).Pos()).To(Equal(1))
		Expect(block.SeekSection(numKey(28)).Pos()).To(Equal(1))
		Expect(block.SeekSection(numKey(29)).Pos()).To(Equal(1))
		Expect(block.SeekSection(numKey(32)).Pos()).To(Equal(2))
		Expect(block.SeekSection(numKey(396)).Pos()).To(Equal(24))
		Expect(block.SeekSection([]byte("zzz")).Pos()).To(Equal(25))
	})

	Describe("SectionReader", func() {
		var section *table.SectionReader

		// S1: key-0016..key-0028
		BeforeEach(func() {
			section = block.GetSection(1)
		})

		It("should have pos", func() {
			Expect(section.Pos()).To(Equal(1))
		})

		It("should seek", func() {
			Expect(section.Seek(numKey(20))).To(BeTrue())
			Expect(section.Next()).To(BeTrue())
			Expect(section.Key()).To(Equal(numKey(20)))

			Expect(section.Seek(numKey(25))).To(BeTrue())
			Expect(section.Next()).To(BeTrue())
			Expect(section.Key()).To(Equal(numKey(28)))
		})

		It("should iterate", func() {
			Expect(section.More()).To(BeTrue())
			Expect(section.Next()).To(BeTrue())
			Expect(section.Key()).To(Equal(numKey(16)))
			Expect(section.Value()).To(HaveSuffix("0016"))

			Expect(section.More()).To(BeTrue())
			Expect(section.Next()).To(BeTrue())
			Expect(section.Key()).To(Equal(numKey(20)))
			Expect(section.Value()).To(HaveSuffix("0020"))

			Expect(section.More()).To(BeTrue())
			Expect(section.Next()).To(BeTrue())
			Expect(section.Key()).To(Equal(numKey(24)))
			Expect(section.Value()).To(HaveSuffix("0024"))

			Expect(section.More()).To(BeTrue())
			Expect(section.Next()).To(BeTrue())
			Expect(section.Key()).To(Equal(numKey(28)))
			Expect(section.Value()).To(HaveSuffix("0028"))

			Expect(section.More()).To(BeFalse())
			Expect(section.Next()).To(BeFalse())
		})
	})
})
