package handlers

// HandlerBundle groups every endpoint handler so route registration takes
// a single argument.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	ICal         *ICalHandler
	Booking      *BookingHandler
	Webhook      *StripeWebhookHandler
	Taxi         *TaxiHandler
	Blocks       *BlockHandler
	Chat         *ChatHandler
	Contact      *ContactHandler
	Content      *ContentHandler
	Gallery      *GalleryHandler
	Health       *HealthHandler
}
