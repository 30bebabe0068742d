package repository

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// reconcileKeys enforces the uniqueness keys of a freshly loaded snapshot.
//
// Collaboration request ids decoded from legacy timestamp strings can
// collide, and some were written as null. Those rows get a fresh max+1 id in
// file order, so loading the same file twice yields the same ids. A
// duplicate key in any other collection is reported, and fails the load
// when strict is set.
func (s *Snapshot) reconcileKeys(strict bool) error {
	seen := map[uint]struct{}{}
	var reassign []int
	for i, r := range s.CollaborationRequests {
		if _, dup := seen[r.ID]; dup || r.ID == 0 {
			reassign = append(reassign, i)
			continue
		}
		seen[r.ID] = struct{}{}
	}
	for _, i := range reassign {
		old := s.CollaborationRequests[i].ID
		s.CollaborationRequests[i].ID = s.nextID(CollaborationRequests)
		zap.L().Warn("collaboration request id reassigned",
			zap.Uint("legacy_id", old),
			zap.Uint("request_id", s.CollaborationRequests[i].ID),
		)
	}

	var errs []error
	report := func(c Collection, key string, dups []string) {
		if len(dups) > 0 {
			errs = append(errs, fmt.Errorf("%s: duplicate %s %s", c, key, strings.Join(dups, ", ")))
		}
	}
	report(Users, "user_id", duplicates(s.Users, func(i int) string { return fmt.Sprint(s.Users[i].ID) }))
	report(Users, "email", duplicates(s.Users, func(i int) string {
		return strings.ToLower(strings.TrimSpace(s.Users[i].Email))
	}))
	report(Events, "event_id", duplicates(s.Events, func(i int) string { return fmt.Sprint(s.Events[i].ID) }))
	report(Services, "service_id", duplicates(s.Services, func(i int) string { return fmt.Sprint(s.Services[i].ID) }))
	report(Tickets, "ticket_id", duplicates(s.Tickets, func(i int) string { return fmt.Sprint(s.Tickets[i].ID) }))
	report(TransferRequests, "request_id", duplicates(s.TransferRequests, func(i int) string {
		return fmt.Sprint(s.TransferRequests[i].ID)
	}))
	report(Reviews, "review_id", duplicates(s.Reviews, func(i int) string { return fmt.Sprint(s.Reviews[i].ID) }))
	report(Notifications, "notification_id", duplicates(s.Notifications, func(i int) string {
		return fmt.Sprint(s.Notifications[i].ID)
	}))

	err := errors.Join(errs...)
	if err == nil {
		return nil
	}
	if strict {
		return err
	}
	zap.L().Warn("duplicate keys in loaded state", zap.Error(err))
	return nil
}

// duplicates lists every key that occurs more than once, in first-seen order.
func duplicates[T any](items []T, key func(int) string) []string {
	count := make(map[string]int, len(items))
	var out []string
	for i := range items {
		k := key(i)
		count[k]++
		if count[k] == 2 {
			out = append(out, k)
		}
	}
	return out
}
