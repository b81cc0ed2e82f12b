package handler

// BasePath is the route prefix for hero resources.
const BasePath = "/superheroes"

// MaxBodyBytes bounds JSON request bodies.
const MaxBodyBytes = 1 << 20

// ServiceName is reported by the health endpoint.
const ServiceName = "Superheroes API"

// WelcomeMessage is served at the root path.
const WelcomeMessage = "Welcome to the Superheroes API!"
