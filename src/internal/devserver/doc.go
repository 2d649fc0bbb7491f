// Package devserver provides an in-memory stand-in for the contacts service.
//
// It serves the same collection layout as a json-server "persons" resource:
//
//	GET    /persons/      - list all contacts
//	POST   /persons/      - create a contact, returns it with a new id
//	GET    /persons/{id}  - get one contact
//	PUT    /persons/{id}  - replace name and number
//	DELETE /persons/{id}  - delete a contact
//	GET    /health        - liveness probe
//	GET    /metrics       - request counters in Prometheus text format
//
// Data lives in memory only. A json-server db.json file ({"persons": [...]})
// can be used as seed.
package devserver
