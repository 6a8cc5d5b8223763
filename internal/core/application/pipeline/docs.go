// Package pipeline runs the ordered validation checks that guard every dish and order
// mutation.
//
// A chain is a plain slice of named checks. Run evaluates them in order against a
// Context and stops at the first failure, returning that check's error untouched:
//
//	c := &pipeline.Context[*order.Order]{RouteID: "7", Data: payload}
//	err := pipeline.Run(ctx, c,
//	    pipeline.Exists("Order", repo.Get),
//	    pipeline.IDMatchesRoute[*order.Order]("Order"),
//	    pipeline.RequiredFields[*order.Order]("Order", "deliverTo", "mobileNumber", "dishes"),
//	)
//
// Checks report failures as errs.ValidationError (bad request) or errs.NotFoundError
// (missing resource). Exists hands the located record to later checks through
// Context.Found. Checks never mutate the store.
package pipeline
