package staticvec

import (
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = Describe("Vec", func() {
	var vec *Vec[int]

	BeforeEach(func() {
		vec = MakeBuilder[int]().WithCapacity(4).Build()
	})

	Context("when newly created", func() {
		It("should be empty", func() {
			gomega.Expect(vec.Len()).To(gomega.Equal(0))
			gomega.Expect(vec.Empty()).To(gomega.BeTrue())
		})

		It("should have the configured capacity", func() {
			gomega.Expect(vec.Capacity()).To(gomega.Equal(4))
		})

		It("should expose an empty live region", func() {
			gomega.Expect(vec.Data()).To(gomega.BeEmpty())
		})

		It("should panic on a negative capacity", func() {
			gomega.Expect(func() {
				MakeBuilder[int]().WithCapacity(-1).Build()
			}).To(gomega.Panic())
		})
	})

	Context("when constructed with contents", func() {
		It("should hold the requested copies", func() {
			v, err := Repeat(4, 3, 7)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(v.Data()).To(gomega.Equal([]int{7, 7, 7}))
		})

		It("should hold the requested zero values", func() {
			v, err := WithLen[int](4, 2)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(v.Data()).To(gomega.Equal([]int{0, 0}))
		})

		It("should copy the source slice", func() {
			src := []int{1, 2, 3}
			v, err := FromSlice(4, src)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			src[0] = 99
			gomega.Expect(v.Data()).To(gomega.Equal([]int{1, 2, 3}))
		})

		It("should hold listed elements in order", func() {
			v, err := Of(4, 1, 2, 3)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(v.Data()).To(gomega.Equal([]int{1, 2, 3}))
		})

		It("should refuse contents beyond the capacity", func() {
			v, err := Repeat(4, 5, 7)

			gomega.Expect(err).To(gomega.MatchError(ErrCapacityExceeded))
			gomega.Expect(v).To(gomega.BeNil())
		})

		It("should refuse a negative count", func() {
			_, err := Repeat(4, -1, 7)

			gomega.Expect(err).To(gomega.MatchError(ErrCapacityExceeded))
		})
	})

	Context("when pushing and popping", func() {
		It("should append until full", func() {
			for i := 0; i < 4; i++ {
				gomega.Expect(vec.PushBack(i)).To(gomega.Succeed())
			}

			gomega.Expect(vec.PushBack(4)).To(gomega.MatchError(ErrCapacityExceeded))
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{0, 1, 2, 3}))
		})

		It("should pop the last element", func() {
			gomega.Expect(vec.PushBack(1)).To(gomega.Succeed())
			gomega.Expect(vec.PushBack(2)).To(gomega.Succeed())

			gomega.Expect(vec.PopBack()).To(gomega.Equal(2))
			gomega.Expect(vec.Len()).To(gomega.Equal(1))
		})

		It("should panic when popping an empty vec", func() {
			gomega.Expect(func() { vec.PopBack() }).To(gomega.Panic())
		})

		It("should zero the vacated slot", func() {
			gomega.Expect(vec.PushBack(42)).To(gomega.Succeed())
			vec.PopBack()

			gomega.Expect(vec.buf[0]).To(gomega.Equal(0))
		})
	})

	Context("when accessing elements", func() {
		BeforeEach(func() {
			gomega.Expect(vec.AssignSlice([]int{10, 20, 30})).To(gomega.Succeed())
		})

		It("should read checked positions", func() {
			e, err := vec.At(1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(e).To(gomega.Equal(20))
		})

		It("should reject checked positions past the length", func() {
			_, err := vec.At(3)
			gomega.Expect(err).To(gomega.MatchError(ErrIndexOutOfRange))

			gomega.Expect(vec.SetAt(-1, 0)).To(gomega.MatchError(ErrIndexOutOfRange))
		})

		It("should write checked positions", func() {
			gomega.Expect(vec.SetAt(2, 33)).To(gomega.Succeed())
			gomega.Expect(vec.Get(2)).To(gomega.Equal(33))
		})

		It("should panic on unchecked misuse", func() {
			gomega.Expect(func() { vec.Get(3) }).To(gomega.Panic())
			gomega.Expect(func() { vec.Set(3, 0) }).To(gomega.Panic())
		})

		It("should expose the first and last elements", func() {
			gomega.Expect(vec.Front()).To(gomega.Equal(10))
			gomega.Expect(vec.Back()).To(gomega.Equal(30))
		})

		It("should alias the storage through Data", func() {
			vec.Data()[0] = 11
			gomega.Expect(vec.Front()).To(gomega.Equal(11))
		})
	})

	Context("when inserting", func() {
		BeforeEach(func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2, 3})).To(gomega.Succeed())
		})

		It("should insert before the given position", func() {
			gomega.Expect(vec.Insert(1, 9)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 9, 2, 3}))
		})

		It("should insert at the end", func() {
			gomega.Expect(vec.Insert(3, 9)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2, 3, 9}))
		})

		It("should insert nothing for an empty element list", func() {
			gomega.Expect(vec.Insert(1)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2, 3}))
		})

		It("should refuse inserts that would overflow", func() {
			err := vec.Insert(1, 8, 9)

			gomega.Expect(err).To(gomega.MatchError(ErrCapacityExceeded))
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2, 3}))
		})

		It("should panic on an out-of-range position", func() {
			gomega.Expect(func() { _ = vec.Insert(4, 9) }).To(gomega.Panic())
			gomega.Expect(func() { _ = vec.Insert(-1, 9) }).To(gomega.Panic())
		})

		It("should insert repeated copies", func() {
			vec.Clear()
			gomega.Expect(vec.AssignSlice([]int{1, 2})).To(gomega.Succeed())

			gomega.Expect(vec.InsertRepeat(1, 2, 7)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 7, 7, 2}))
		})

		It("should refuse a negative repeat count", func() {
			gomega.Expect(vec.InsertRepeat(1, -1, 7)).
				To(gomega.MatchError(ErrCapacityExceeded))
		})

		It("should insert a slice copy", func() {
			vec.Clear()
			gomega.Expect(vec.AssignSlice([]int{1, 2})).To(gomega.Succeed())

			gomega.Expect(vec.InsertSlice(2, []int{8, 9})).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2, 8, 9}))
		})
	})

	Context("when erasing", func() {
		BeforeEach(func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2, 3, 4})).To(gomega.Succeed())
		})

		It("should shift the tail left", func() {
			vec.Erase(1)
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 3, 4}))
		})

		It("should erase a range", func() {
			vec.EraseRange(1, 3)
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 4}))
		})

		It("should treat an inverted range as a no-op", func() {
			vec.EraseRange(3, 1)
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2, 3, 4}))
		})

		It("should panic on invalid positions", func() {
			gomega.Expect(func() { vec.Erase(4) }).To(gomega.Panic())
			gomega.Expect(func() { vec.EraseRange(0, 5) }).To(gomega.Panic())
		})

		It("should zero vacated slots", func() {
			vec.EraseRange(2, 4)

			gomega.Expect(vec.buf[2]).To(gomega.Equal(0))
			gomega.Expect(vec.buf[3]).To(gomega.Equal(0))
		})
	})

	Context("when resizing", func() {
		It("should grow with zero values", func() {
			gomega.Expect(vec.PushBack(5)).To(gomega.Succeed())
			gomega.Expect(vec.Resize(3)).To(gomega.Succeed())

			gomega.Expect(vec.Data()).To(gomega.Equal([]int{5, 0, 0}))
		})

		It("should grow with the given value", func() {
			gomega.Expect(vec.ResizeWith(2, 8)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{8, 8}))
		})

		It("should shrink by dropping the tail", func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2, 3})).To(gomega.Succeed())
			gomega.Expect(vec.Resize(1)).To(gomega.Succeed())

			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1}))
		})

		It("should refuse sizes beyond the capacity", func() {
			gomega.Expect(vec.Resize(5)).To(gomega.MatchError(ErrCapacityExceeded))
			gomega.Expect(vec.Resize(-1)).To(gomega.MatchError(ErrCapacityExceeded))
		})
	})

	Context("when assigning", func() {
		BeforeEach(func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2})).To(gomega.Succeed())
		})

		It("should replace the contents", func() {
			gomega.Expect(vec.Assign(3, 6)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{6, 6, 6}))
		})

		It("should leave the contents intact on an oversized assign", func() {
			err := vec.AssignSlice([]int{1, 2, 3, 4, 5})

			gomega.Expect(err).To(gomega.MatchError(ErrCapacityExceeded))
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2}))
		})

		It("should copy from another vec", func() {
			other, _ := Of(4, 7, 8)

			gomega.Expect(vec.CopyFrom(other)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{7, 8}))
			gomega.Expect(other.Data()).To(gomega.Equal([]int{7, 8}))
		})

		It("should treat self-assignment as a no-op", func() {
			gomega.Expect(vec.CopyFrom(vec)).To(gomega.Succeed())
			gomega.Expect(vec.MoveFrom(vec)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2}))
		})

		It("should move from another vec and empty it", func() {
			other, _ := Of(4, 7, 8)

			gomega.Expect(vec.MoveFrom(other)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{7, 8}))
			gomega.Expect(other.Empty()).To(gomega.BeTrue())
			gomega.Expect(other.Capacity()).To(gomega.Equal(4))
		})

		It("should move between different capacities when it fits", func() {
			other, _ := Of(2, 7, 8)

			gomega.Expect(vec.MoveFrom(other)).To(gomega.Succeed())
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{7, 8}))
			gomega.Expect(vec.Capacity()).To(gomega.Equal(4))
			gomega.Expect(other.Empty()).To(gomega.BeTrue())
		})

		It("should refuse moves that do not fit", func() {
			other, _ := Of(8, 1, 2, 3, 4, 5)

			gomega.Expect(vec.MoveFrom(other)).To(gomega.MatchError(ErrCapacityExceeded))
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2}))
			gomega.Expect(other.Len()).To(gomega.Equal(5))
		})
	})

	Context("when cloning and taking", func() {
		It("should clone without aliasing", func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2, 3})).To(gomega.Succeed())

			c := vec.Clone()
			c.Set(0, 99)

			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1, 2, 3}))
			gomega.Expect(c.Data()).To(gomega.Equal([]int{99, 2, 3}))
		})

		It("should take the storage and empty the source", func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2, 3})).To(gomega.Succeed())

			moved := Take(vec)

			gomega.Expect(moved.Data()).To(gomega.Equal([]int{1, 2, 3}))
			gomega.Expect(vec.Empty()).To(gomega.BeTrue())
			gomega.Expect(vec.Capacity()).To(gomega.Equal(4))
		})
	})

	Context("when swapping", func() {
		It("should exchange contents", func() {
			a, _ := Of(4, 1, 2)
			b, _ := Of(4, 7, 8, 9)

			a.SwapWith(b)

			gomega.Expect(a.Data()).To(gomega.Equal([]int{7, 8, 9}))
			gomega.Expect(b.Data()).To(gomega.Equal([]int{1, 2}))
		})

		It("should panic when capacities differ", func() {
			a := New[int](4)
			b := New[int](5)

			gomega.Expect(func() { a.SwapWith(b) }).To(gomega.Panic())
		})
	})

	Context("when reserving", func() {
		It("should accept capacities up to the fixed capacity", func() {
			gomega.Expect(vec.Reserve(4)).To(gomega.Succeed())
			gomega.Expect(vec.Capacity()).To(gomega.Equal(4))
		})

		It("should refuse larger capacities", func() {
			gomega.Expect(vec.Reserve(5)).To(gomega.MatchError(ErrCapacityExceeded))
		})

		It("should keep ShrinkToFit a no-op", func() {
			gomega.Expect(vec.PushBack(1)).To(gomega.Succeed())
			vec.ShrinkToFit()

			gomega.Expect(vec.Capacity()).To(gomega.Equal(4))
			gomega.Expect(vec.Data()).To(gomega.Equal([]int{1}))
		})
	})

	Context("when clearing", func() {
		It("should remove all elements and keep the capacity", func() {
			gomega.Expect(vec.AssignSlice([]int{1, 2, 3})).To(gomega.Succeed())

			vec.Clear()

			gomega.Expect(vec.Empty()).To(gomega.BeTrue())
			gomega.Expect(vec.Capacity()).To(gomega.Equal(4))
			gomega.Expect(vec.buf).To(gomega.Equal([]int{0, 0, 0, 0}))
		})
	})

	Context("when built with fail-fast", func() {
		var ff *Vec[int]

		BeforeEach(func() {
			ff = MakeBuilder[int]().WithCapacity(1).WithFailFast().Build()
		})

		It("should panic instead of returning capacity errors", func() {
			gomega.Expect(ff.PushBack(1)).To(gomega.Succeed())
			gomega.Expect(func() { _ = ff.PushBack(2) }).To(gomega.Panic())
		})

		It("should panic instead of returning index errors", func() {
			gomega.Expect(func() { _, _ = ff.At(0) }).To(gomega.Panic())
		})

		It("should propagate the policy to clones", func() {
			c := ff.Clone()
			gomega.Expect(c.PushBack(1)).To(gomega.Succeed())
			gomega.Expect(func() { _ = c.PushBack(2) }).To(gomega.Panic())
		})
	})
})
