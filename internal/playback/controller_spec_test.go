package playback

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/leaflet/internal/trace"
)

var _ = Describe("Controller", func() {
	var (
		sink *recordingSink
		c    *Controller
	)

	BeforeEach(func() {
		sink = &recordingSink{}
		c = NewController(sink)
	})

	It("starts idle and ignores transport calls", func() {
		c.Play()
		c.Step()
		c.Reset()
		Expect(c.Status()).To(Equal(Idle))
		Expect(sink.cursors).To(BeEmpty())
	})

	Context("with a linear search trace", func() {
		BeforeEach(func() {
			c.Load(trace.Generate(trace.LinearSearch, []float64{3, 7, 2, 9}))
		})

		It("renders the announcement on load", func() {
			Expect(c.Status()).To(Equal(Ready))
			Expect(sink.steps).To(HaveLen(1))
			Expect(sink.steps[0].Narration).To(ContainSubstring("Looking for 2"))
		})

		It("finishes on the found step when played through", func() {
			c.Play()
			for c.Tick() {
			}
			Expect(c.Status()).To(Equal(Finished))
			last := sink.steps[len(sink.steps)-1]
			Expect(last.Highlighted).To(Equal([]int{2}))
			Expect(last.Narration).To(ContainSubstring("Found"))
		})

		It("re-renders step zero on reset", func() {
			c.Step()
			c.Step()
			c.Reset()
			Expect(sink.cursors).To(Equal([]int{0, 1, 2, 0}))
			Expect(c.Status()).To(Equal(Ready))
		})

		It("keeps speed across reset", func() {
			Expect(c.SetSpeed(300)).To(Succeed())
			c.Reset()
			Expect(c.Speed().Milliseconds()).To(BeEquivalentTo(300))
		})
	})

	Context("with a placeholder trace", func() {
		BeforeEach(func() {
			c.Load(trace.Generate(trace.MergeSort, []float64{4, 4, 4}))
		})

		It("has a single step and finishes on the first advance", func() {
			Expect(sink.steps).To(HaveLen(1))
			c.Step()
			Expect(c.Status()).To(Equal(Finished))
			Expect(sink.steps).To(HaveLen(1))
		})
	})

	DescribeTable("rejecting non-positive speeds",
		func(ms int) {
			err := c.SetSpeed(ms)
			Expect(err).To(MatchError(ErrInvalidSpeed))
		},
		Entry("zero", 0),
		Entry("negative", -5),
	)
})
