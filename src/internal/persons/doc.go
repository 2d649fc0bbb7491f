// Package persons provides a client for the phonebook contacts service.
//
// The service exposes a single collection resource (by default
// http://localhost:3001/persons/) with four operations:
//
//	GET    /persons/      list every contact
//	POST   /persons/      create a contact, the service assigns the id
//	PUT    /persons/{id}  replace name and number of a contact
//	DELETE /persons/{id}  remove a contact
//
// The client is stateless: it holds no cache and performs no retries. A
// failed call returns an error from the internal/errors package; a 404 is
// reported with code NOT_FOUND so callers can match it with ErrNotFound.
//
// # Example Usage
//
//	client := persons.NewClient(nil) // Uses default HTTP client
//	contacts, err := client.GetAll(ctx)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//
//	created, err := client.Create(ctx, persons.ContactInput{Name: "Ada", Number: "1"})
//
// The client implements the PersonsClient interface from the domain package,
// enabling dependency injection and testing with mocks.
package persons
