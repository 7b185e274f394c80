package types

// Client -> Server
// SeatRequest (no "type" field, legacy shape):
//   category: "VIP" | "Business" | "Economy" | section name | "any"
//   seat_count: number
//
// Choice:
//   type: "choice"
//   choice: 1..3 accepts that suggestion, anything else declines all
//   (a bare integer text frame is accepted too)
//
// PaymentResult:
//   type: "payment_result"
//   success: boolean
//   seats: [{section, row, number}]

// Server -> Client
// SeatStates (sent on connect and after a successful payment):
//   seats: [{section, row, number, status}] // status "F" | "R" | "B"
//
// Suggestions:
//   suggestions: [{suggestion_number, seats: [{section, row, number, price}], total_price}]
//
// Unavailable: {} // no grouping of the requested size exists in scope
//
// Accepted:
//   choice: number // the accepted suggestion
//
// Declined: {}
//
// PaymentAccepted / PaymentFailed: {}
//
// Error:
//   error: string
