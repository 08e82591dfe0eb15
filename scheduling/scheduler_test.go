package scheduling

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scheduler", func() {
	var sched *Scheduler

	BeforeEach(func() {
		sched = NewScheduler(rand.New(rand.NewSource(1)))
	})

	It("should start at time zero", func() {
		Expect(sched.CurrentTime()).To(Equal(VTimeInSec(0)))
	})

	It("should advance time on tick", func() {
		Expect(sched.Tick(3)).To(Succeed())
		Expect(sched.CurrentTime()).To(Equal(VTimeInSec(3)))
	})

	It("should own one stream per role", func() {
		Expect(sched.ThinkStream().Name()).To(Equal(ThinkStreamName))
		Expect(sched.UpdateStream().Name()).To(Equal(UpdateStreamName))
	})

	It("should advance the think stream before the update stream", func() {
		var order []string

		thinkCmd, err := NewDeferredCommand(func() error {
			order = append(order, "think")
			return nil
		})
		Expect(err).NotTo(HaveOccurred())

		updateCmd, err := NewDeferredCommand(func() error {
			order = append(order, "update")
			return nil
		})
		Expect(err).NotTo(HaveOccurred())

		sched.ThinkStream().Add(thinkCmd)
		sched.UpdateStream().Add(updateCmd)

		Expect(sched.Tick(1)).To(Succeed())
		Expect(order).To(Equal([]string{"think", "update"}))
	})

	It("should pause and resume both streams", func() {
		fired := 0
		cmd, err := NewDeferredCommand(func() error {
			fired++
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		cmd.SetRecurDelayInterval(NewPointInterval[VTimeInSec](1))

		sched.UpdateStream().Add(cmd)

		sched.Pause()
		Expect(sched.Tick(1)).To(Succeed())
		Expect(fired).To(Equal(0))

		sched.Resume()
		Expect(sched.Tick(2)).To(Succeed())
		Expect(fired).To(Equal(1))
	})
})
