package scheduling

import (
	"errors"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DeferredCommand", func() {
	var (
		fired int
		cmd   *DeferredCommand
	)

	BeforeEach(func() {
		fired = 0

		var err error
		cmd, err = NewDeferredCommand(func() error {
			fired++
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should refuse a nil action", func() {
		c, err := NewDeferredCommand(nil)
		Expect(c).To(BeNil())
		Expect(err).To(MatchError(ErrNilAction))
	})

	It("should start with clean bookkeeping", func() {
		Expect(cmd.TimesExecuted()).To(Equal(uint64(0)))
		Expect(cmd.LastExecutionTime()).To(Equal(VTimeInSec(0)))
		Expect(cmd.LastGap()).To(Equal(VTimeInSec(0)))
		Expect(cmd.IsRepeating()).To(BeTrue())
	})

	It("should count executions", func() {
		for i := 0; i < 5; i++ {
			Expect(cmd.Execute(VTimeInSec(i))).To(Succeed())
		}

		Expect(fired).To(Equal(5))
		Expect(cmd.TimesExecuted()).To(Equal(uint64(5)))
	})

	It("should track the gap between the last two executions", func() {
		Expect(cmd.Execute(1)).To(Succeed())
		Expect(cmd.LastGap()).To(Equal(VTimeInSec(0)))

		Expect(cmd.Execute(3)).To(Succeed())
		Expect(cmd.LastExecutionTime()).To(Equal(VTimeInSec(3)))
		Expect(cmd.LastGap()).To(Equal(VTimeInSec(2)))

		Expect(cmd.Execute(3.5)).To(Succeed())
		Expect(cmd.LastGap()).To(Equal(VTimeInSec(0.5)))
	})

	It("should propagate an action error without touching bookkeeping", func() {
		actionErr := errors.New("action failed")
		failing, err := NewDeferredCommand(func() error { return actionErr })
		Expect(err).NotTo(HaveOccurred())

		Expect(failing.Execute(1)).To(MatchError(actionErr))
		Expect(failing.TimesExecuted()).To(Equal(uint64(0)))
		Expect(failing.LastExecutionTime()).To(Equal(VTimeInSec(0)))
	})

	It("should sanitize a replacement interval", func() {
		cmd.SetRecurDelayInterval(NewInterval[VTimeInSec](-1, 2))
		Expect(cmd.RecurDelayInterval().Low()).To(Equal(VTimeInSec(0)))
		Expect(cmd.RecurDelayInterval().High()).To(Equal(VTimeInSec(2)))
	})

	It("should raise the max when the min is set above it", func() {
		cmd.SetRecurDelayInterval(NewInterval[VTimeInSec](1, 2))
		cmd.SetRecurDelayMin(5)

		Expect(cmd.RecurDelayInterval().Low()).To(Equal(VTimeInSec(5)))
		Expect(cmd.RecurDelayInterval().High()).To(Equal(VTimeInSec(5)))
	})

	It("should lower the min when the max is set below it", func() {
		cmd.SetInitDelayInterval(NewInterval[VTimeInSec](3, 4))
		cmd.SetInitDelayMax(2)

		Expect(cmd.InitDelayInterval().Low()).To(Equal(VTimeInSec(2)))
		Expect(cmd.InitDelayInterval().High()).To(Equal(VTimeInSec(2)))
	})

	It("should keep the paired bound when the new bound fits", func() {
		cmd.SetRecurDelayInterval(NewInterval[VTimeInSec](1, 4))
		cmd.SetRecurDelayMax(3)

		Expect(cmd.RecurDelayInterval().Low()).To(Equal(VTimeInSec(1)))
		Expect(cmd.RecurDelayInterval().High()).To(Equal(VTimeInSec(3)))
	})

	It("should sample delays within the configured interval", func() {
		cmd.SetRecurDelayInterval(NewInterval[VTimeInSec](1, 2))
		r := rand.New(rand.NewSource(1))

		for i := 0; i < 100; i++ {
			d := cmd.SampleRecurDelay(r)
			Expect(d).To(BeNumerically(">=", 1))
			Expect(d).To(BeNumerically("<=", 2))
		}
	})

	It("should draw a fresh sample on every read", func() {
		cmd.SetInitDelayInterval(NewInterval[VTimeInSec](0, 1000))
		r := rand.New(rand.NewSource(1))

		first := cmd.SampleInitDelay(r)
		second := cmd.SampleInitDelay(r)
		Expect(first).NotTo(Equal(second))
	})
})
