// Package order provides domain entities and business logic for order
// management in the shop. It implements the Order aggregate root together with
// its owned entities: payments and the append-only delivery history.
//
// The package includes:
//   - Order: the aggregate root carrying ownership, status, payments, history
//   - Status: the order lifecycle status as a string value object
//   - Payment: a payment record attached to exactly one order
//   - DeliveryEvent: one entry of the append-only delivery history
//
// Key business rules:
//   - An order has exactly one owning customer, fixed at creation
//   - A customer may cancel only an order that is still pending
//   - Admin status writes are unconditional; no transition guard applies
//   - Payments and delivery events are append-only and never removed
package order
