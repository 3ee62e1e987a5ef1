package growth_test

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/netgrowth/internal/growth"
)

var _ = Describe("Simulate", func() {
	DescribeTable("grid shape",
		func(h, horizon float64) {
			traj, err := growth.Simulate(1, 0.1, 100, h, horizon)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Times).To(HaveLen(len(traj.Values)))
			Expect(traj.Len()).To(BeNumerically(">", 0))
			Expect(traj.Times[0]).To(Equal(0.0))
			for i, tm := range traj.Times {
				Expect(tm).To(Equal(float64(i) * h))
			}
			last := traj.Times[traj.Len()-1]
			Expect(last).To(BeNumerically("<", horizon))
			Expect(last + h).To(BeNumerically(">=", horizon*(1-1e-12)))
		},
		Entry("unit step", 1.0, 5.0),
		Entry("tenth step", 0.1, 50.0),
		Entry("step not dividing horizon", 0.3, 1.0),
		Entry("step equal to slider default", 0.1, 23.0),
		Entry("step larger than horizon", 2.0, 1.0),
		Entry("ulp-sensitive ratio", 0.3, 3.0),
	)

	It("starts exactly at U0", func() {
		for _, u0 := range []float64{0, 1, 1e9, -3, 123.456} {
			traj, err := growth.Simulate(u0, 0.4, 1000, 0.1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Values[0]).To(Equal(u0))
		}
	})

	It("is bit-for-bit deterministic", func() {
		a, err := growth.Simulate(1.234e6, 0.37, 5.5e9, 0.07, 30)
		Expect(err).NotTo(HaveOccurred())
		b, err := growth.Simulate(1.234e6, 0.37, 5.5e9, 0.07, 30)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Times).To(Equal(a.Times))
		for i := range a.Values {
			Expect(math.Float64bits(b.Values[i])).To(Equal(math.Float64bits(a.Values[i])))
		}
	})

	It("stays at the carrying capacity", func() {
		traj, err := growth.Simulate(100, 0.8, 100, 0.5, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Values).To(HaveEach(Equal(100.0)))
	})

	It("stays at zero", func() {
		traj, err := growth.Simulate(0, 0.8, 100, 0.5, 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Values).To(HaveEach(Equal(0.0)))
	})

	It("approaches K monotonically for a stable step", func() {
		traj, err := growth.Simulate(1, 0.1, 100, 0.1, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(500))
		for i := 1; i < traj.Len(); i++ {
			Expect(traj.Values[i]).To(BeNumerically(">=", traj.Values[i-1]))
			Expect(traj.Values[i]).To(BeNumerically("<=", 100.0))
		}
	})

	It("overshoots K when r*h is above one", func() {
		Expect(growth.Stability(1.5, 1)).To(Equal(growth.Oscillatory))
		traj, err := growth.Simulate(90, 1.5, 100, 1, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Values[1]).To(BeNumerically(">", 100.0))
	})

	It("fails fast on K == 0", func() {
		traj, err := growth.Simulate(1, 0.1, 0, 0.1, 10)
		Expect(err).To(MatchError(growth.ErrUndefinedCapacity))
		Expect(traj).To(BeNil())
	})

	It("rejects non-positive step sizes", func() {
		for _, h := range []float64{0, -0.1} {
			traj, err := growth.Simulate(1, 0.1, 100, h, 10)
			Expect(err).To(MatchError(growth.ErrInvalidParameter))
			Expect(traj).To(BeNil())
		}
	})

	It("returns an empty trajectory for a non-positive horizon", func() {
		traj, err := growth.Simulate(1, 0.1, 100, 0.1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Times).To(BeEmpty())
		Expect(traj.Values).To(BeEmpty())
	})

	It("is safe for concurrent independent callers", func() {
		want := make([]*growth.Trajectory, 8)
		for i := range want {
			var err error
			want[i], err = growth.Simulate(1, 0.05*float64(i+1), 100, 0.1, 40)
			Expect(err).NotTo(HaveOccurred())
		}

		got := make([]*growth.Trajectory, len(want))
		var wg sync.WaitGroup
		for i := range got {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer GinkgoRecover()
				traj, err := growth.Simulate(1, 0.05*float64(i+1), 100, 0.1, 40)
				Expect(err).NotTo(HaveOccurred())
				got[i] = traj
			}(i)
		}
		wg.Wait()

		for i := range want {
			Expect(got[i].Values).To(Equal(want[i].Values))
		}
	})
})
