// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Paulo Bof

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListClientsQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildListClientsQuery(ctx)
	require.NoError(t, err)

	// no filters, no args
	require.Empty(t, args)

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from clients")
	require.Contains(t, q, "left join client_accounts")
	require.Contains(t, q, "group by")
	require.Contains(t, q, "count(ca.account_number)")

	// columns presence (subset / key columns)
	require.Contains(t, q, "cpf")
	require.Contains(t, q, "name")
	require.Contains(t, q, "birth_date")
	require.Contains(t, q, "address")
	require.Contains(t, q, "account_count")
}

func Test_buildListAccountsQuery(t *testing.T) {
	tests := []struct {
		name       string
		cpf        string
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "success: no CPF filter lists all accounts by number",
			cpf:  "",
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from accounts a")
				require.Contains(t, q, "join clients c")
				require.Contains(t, q, "order by a.number")

				// index join must NOT be added
				require.NotContains(t, q, "client_accounts")

				require.Empty(t, args)
			},
		},
		{
			name: "success: CPF filter narrows via the ownership index",
			cpf:  "11122233344",
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "join client_accounts ca")
				require.Contains(t, q, "where")
				require.Contains(t, q, "ca.client_cpf")
				require.Contains(t, q, "order by ca.position, ca.account_number")

				// squirrel question placeholder
				require.Contains(t, query, "?")

				require.Len(t, args, 1)
				require.Equal(t, "11122233344", args[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			query, args, err := buildListAccountsQuery(ctx, tt.cpf)

			require.NoError(t, err)
			require.NotEmpty(t, query)

			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildCountWithdrawalsQuery(t *testing.T) {
	since := time.Date(2026, 8, 29, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		number     int64
		since      *time.Time
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: lifetime count has no time filter",
			number: 7,
			since:  nil,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "select count(*)")
				require.Contains(t, q, "from transactions")
				require.Contains(t, q, "account_number")
				require.Contains(t, q, "kind")
				require.NotContains(t, q, "created_at")

				// args: account number + kind
				require.Len(t, args, 2)
				assert.Equal(t, int64(7), args[0])
				assert.Equal(t, "saque", args[1])
			},
		},
		{
			name:   "success: daily count filters by created_at >= since",
			number: 7,
			since:  &since,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "created_at >= ?")

				require.Len(t, args, 3)
				assert.Equal(t, int64(7), args[0])
				assert.Equal(t, "saque", args[1])
				assert.Equal(t, since, args[2])
			},
		},
		{
			name:   "success: idempotent for same input",
			number: 9,
			since:  &since,
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildCountWithdrawalsQuery(context.Background(), 9, &since)
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			query, args, err := buildCountWithdrawalsQuery(ctx, tt.number, tt.since)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}
