package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "schema-api" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (c *SchemaClient) Name() string {
	return "schema-api"
}

// HealthCheck reports the downstream metadata API's availability based on
// the circuit breaker state. No network call is made; the state mapping
// lives on [httpclient.Client.HealthCheck].
//
// This reports downstream status, not service readiness. The service itself
// is always ready to handle requests (it returns proper domain errors when
// the downstream is failing). Tying readiness to downstream health would
// prevent the circuit breaker from ever recovering, because Kubernetes would
// stop routing traffic to this service.
func (c *SchemaClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
