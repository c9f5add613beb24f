package qb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragments(t *testing.T) {
	tests := []struct {
		got, expected string
	}{
		{Param("orderId"), ":orderId"},
		{Param(":orderId"), ":orderId"},
		{Eq("o.id", "orderId"), "o.id = :orderId"},
		{Neq("o.status", "status"), "o.status <> :status"},
		{Gt("o.amount", "min"), "o.amount > :min"},
		{Lt("o.amount", "max"), "o.amount < :max"},
		{Gte("o.created_date", "startDate"), "o.created_date >= :startDate"},
		{Lte("o.created_date", "endDate"), "o.created_date <= :endDate"},
		{Like("u.name", "name"), "u.name like :name"},
		{Between("o.amount", "min", "max"), "o.amount between :min and :max"},
		{Null("o.deleted_at"), "o.deleted_at is null"},
		{NotNull("o.deleted_at"), "o.deleted_at is not null"},
		{In("o.status", "first", "second"), "o.status in (:first, :second)"},
		{In("o.status"), "o.status in ()"},
		{InQuery("o.customer_id", "select c.id from customer c"), "o.customer_id in (select c.id from customer c)"},
		{Subquery("select 1", "x"), "(select 1) x"},
		{Lateral("select 1", "x"), "lateral (select 1) x on true"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestFragments_InSpec(t *testing.T) {
	s := NewSpec().
		Where(Eq("o.id", "orderId")).
		And(Between("o.created_date", "startDate", "endDate")).
		Or(NotNull("o.paid_at"))

	body, ok := s.Body()
	assert.True(t, ok)
	assert.Equal(t, " o.id = :orderId and o.created_date between :startDate and :endDate or o.paid_at is not null", body)
}
