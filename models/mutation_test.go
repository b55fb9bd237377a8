package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutationKind_CheckTarget(t *testing.T) {
	tests := []struct {
		name    string
		kind    MutationKind
		key     EntityKey
		wantErr error
	}{
		{name: "order update", kind: MutationOrderUpdated, key: NewEntityKey(EntityOrder, "1")},
		{name: "quote on order", kind: MutationQuoteRejected, key: NewEntityKey(EntityOrder, "1")},
		{name: "ticket message", kind: MutationTicketMessageCreated, key: NewEntityKey(EntityTicket, "t1")},
		{name: "enquiry reply", kind: MutationEnquiryReply, key: NewEntityKey(EntityEnquiry, "e1")},
		{name: "wrong entity", kind: MutationDeviceUpdated, key: NewEntityKey(EntityOrder, "1"), wantErr: ErrEntityTypeMismatch},
		{name: "unknown kind", kind: "order_archived", key: NewEntityKey(EntityOrder, "1"), wantErr: ErrUnknownMutationKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kind.CheckTarget(tt.key)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMutationKind_EntityAndKnown(t *testing.T) {
	entity, ok := MutationQuoteApproved.Entity()
	assert.True(t, ok)
	assert.Equal(t, EntityOrder, entity)
	assert.True(t, MutationQuoteApproved.Known())

	_, ok = MutationKind("").Entity()
	assert.False(t, ok)
	assert.False(t, MutationKind("").Known())
}

func TestPendingMutation_ReadyAt(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, PendingMutation{}.ReadyAt(now))
	assert.True(t, PendingMutation{NextAttemptAt: now}.ReadyAt(now))
	assert.False(t, PendingMutation{NextAttemptAt: now.Add(time.Second)}.ReadyAt(now))
	assert.True(t, PendingMutation{State: MutationDead}.IsDead())
}
