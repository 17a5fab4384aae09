package kv

import "fmt"

// Key names one entity partition. All partition keys live in this registry;
// no repository may invent its own key.
type Key string

const (
	KeyOrders       Key = "orders"
	KeyStudents     Key = "students"
	KeyUsers        Key = "users"
	KeyClasses      Key = "classes"
	KeyPayments     Key = "payments"
	KeyTransactions Key = "transactions"

	// Legacy two-partition order layout. Folded into KeyOrders at startup by
	// OrderRepository.MigrateLegacyPartitions and then removed.
	KeyPendingOrders   Key = "pendingOrders"
	KeyCompletedOrders Key = "completedOrders"

	// Reserved for the storefront UI; no repository is built on these.
	KeyCart          Key = "cart"
	KeyConversations Key = "conversations"
)

// registry enumerates every key the service may touch.
var registry = []Key{
	KeyOrders,
	KeyStudents,
	KeyUsers,
	KeyClasses,
	KeyPayments,
	KeyTransactions,
	KeyPendingOrders,
	KeyCompletedOrders,
	KeyCart,
	KeyConversations,
}

// CheckRegistry verifies at startup that no two partitions share a key.
// Collisions are a programming error, so a failed check should abort boot.
func CheckRegistry() error {
	seen := make(map[Key]struct{}, len(registry))
	for _, k := range registry {
		if k == "" {
			return fmt.Errorf("kv: empty partition key in registry")
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("kv: duplicate partition key %q", k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
