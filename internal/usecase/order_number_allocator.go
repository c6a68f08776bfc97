package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"serralheria_os/internal/usecase/interfaces"
)

var (
	ErrInvalidBudgetNumber = errors.New("invalid budget number")

	// ErrAllocationExhausted means the suffix probe hit its cap without
	// finding a free order number. Surfaced to the operator; never retried
	// unbounded.
	ErrAllocationExhausted = errors.New("order number allocation exhausted")
)

const defaultAllocatorMaxProbes = 50

// OrderNumberAllocator derives order numbers from budget numbers by swapping
// the quote prefix for the order prefix (ORC-0007 -> OS-0007).
//
// Uniqueness is best-effort here: the allocator only pre-checks existence.
// The hard guarantee lives in the order repository, whose transactional
// insert fails with ErrNumberTaken when a concurrent conversion wins the
// same number; callers resume probing from the losing suffix.
type OrderNumberAllocator struct {
	orders      interfaces.IServiceOrderRepository
	quotePrefix string
	orderPrefix string
	maxProbes   int
}

func NewOrderNumberAllocator(orders interfaces.IServiceOrderRepository, quotePrefix, orderPrefix string, maxProbes int) *OrderNumberAllocator {
	if maxProbes <= 0 {
		maxProbes = defaultAllocatorMaxProbes
	}
	return &OrderNumberAllocator{
		orders:      orders,
		quotePrefix: quotePrefix,
		orderPrefix: orderPrefix,
		maxProbes:   maxProbes,
	}
}

// DeriveBase maps a budget number onto its candidate order number.
func (a *OrderNumberAllocator) DeriveBase(budgetNumber string) (string, error) {
	budgetNumber = strings.TrimSpace(budgetNumber)
	if budgetNumber == "" {
		return "", ErrInvalidBudgetNumber
	}
	if strings.HasPrefix(budgetNumber, a.quotePrefix+"-") {
		return a.orderPrefix + strings.TrimPrefix(budgetNumber, a.quotePrefix), nil
	}
	// Manually entered budgets may carry arbitrary numbers; keep them
	// recognizable under the order prefix.
	return a.orderPrefix + "-" + budgetNumber, nil
}

// Allocate probes base, base-1, base-2, … from the given suffix until an
// unused number is found or the cap is hit.
//
// fromSuffix 0 starts at the bare base; a caller that lost an insert race on
// suffix n resumes with fromSuffix n+1.
func (a *OrderNumberAllocator) Allocate(ctx context.Context, base string, fromSuffix int) (number string, suffix int, err error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return "", 0, ErrInvalidBudgetNumber
	}
	if fromSuffix < 0 {
		fromSuffix = 0
	}

	for s := fromSuffix; s <= a.maxProbes; s++ {
		candidate := base
		if s > 0 {
			candidate = fmt.Sprintf("%s-%d", base, s)
		}
		exists, err := a.orders.ExistsNumber(ctx, candidate)
		if err != nil {
			return "", 0, err
		}
		if !exists {
			return candidate, s, nil
		}
	}
	return "", 0, fmt.Errorf("%w: base %s after %d probes", ErrAllocationExhausted, base, a.maxProbes)
}
