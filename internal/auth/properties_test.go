// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth_test

import (
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/gatekeeper/internal/auth"
)

var _ = Describe("Authenticator", func() {
	var (
		table map[string]string
		a     *auth.Authenticator
	)

	BeforeEach(func() {
		table = map[string]string{
			"alice":   "secret123",
			"bob":     "hunter2",
			"user":    "lowercase",
			"emoji":   "pässwörd🔑",
			"spacey ": " padded ",
		}
		var err error
		a, err = auth.FromMap(table)
		Expect(err).NotTo(HaveOccurred())
	})

	It("grants every registered pair", func() {
		for username, password := range table {
			Expect(a.Authenticate(username, password)).To(BeTrue(), "username %q", username)
		}
	})

	It("denies every registered username with any other password", func() {
		for username, password := range table {
			for _, wrong := range []string{"", password + "x", "x" + password, password[:len(password)-1], "hunter3"} {
				if wrong == password {
					continue
				}
				Expect(a.Authenticate(username, wrong)).To(BeFalse(), "username %q password %q", username, wrong)
			}
		}
	})

	It("denies usernames that are not registered", func() {
		for _, username := range []string{"", "carol", "alice ", " alice", "spacey"} {
			for _, password := range table {
				Expect(a.Authenticate(username, password)).To(BeFalse(), "username %q", username)
			}
		}
	})

	It("matches usernames case-sensitively", func() {
		Expect(a.Authenticate("User", "lowercase")).To(BeFalse())
		Expect(a.Authenticate("USER", "lowercase")).To(BeFalse())
		Expect(a.Authenticate("user", "lowercase")).To(BeTrue())
	})

	It("returns the same verdict on repeated calls", func() {
		first := a.Authenticate("bob", "hunter2")
		denied := a.Authenticate("bob", "hunter3")
		for i := 0; i < 10; i++ {
			Expect(a.Authenticate("bob", "hunter2")).To(Equal(first))
			Expect(a.Authenticate("bob", "hunter3")).To(Equal(denied))
		}
		Expect(a.Len()).To(Equal(len(table)))
	})

	It("ignores changes to the construction table", func() {
		delete(table, "alice")
		table["bob"] = "changed"
		Expect(a.Authenticate("alice", "secret123")).To(BeTrue())
		Expect(a.Authenticate("bob", "hunter2")).To(BeTrue())
		Expect(a.Authenticate("bob", "changed")).To(BeFalse())
	})
})
