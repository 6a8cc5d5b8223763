// Package kernel provides domain primitives shared by the dish and order models.
//
// The package includes:
//   - ID: the immutable string identifier of a dish or an order
//   - IDSequence: a concurrency-safe generator of decimal ids seeded above existing ones
package kernel
