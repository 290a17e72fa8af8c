package simpay

// Storefront gateway ids and the SimPay direct channel each one maps to.
// An empty channel means the buyer picks the method on the SimPay side.
const (
	GatewayPayment      = "simpay_payment"
	GatewayBlik         = "simpay_blik"
	GatewayBlikPayLater = "simpay_blik_pay_later"
	GatewayPayPo        = "simpay_paypo"
)

var directChannels = map[string]string{
	GatewayPayment:      "",
	GatewayBlik:         "blik",
	GatewayBlikPayLater: "blik-paylater",
	GatewayPayPo:        "paypo",
}

// DirectChannel returns the channel hint for a gateway id, empty when the
// gateway is unknown or has no dedicated channel.
func DirectChannel(gatewayID string) string {
	return directChannels[gatewayID]
}

// KnownGateway reports whether the gateway id is one the storefront may send.
func KnownGateway(gatewayID string) bool {
	_, ok := directChannels[gatewayID]
	return ok
}
