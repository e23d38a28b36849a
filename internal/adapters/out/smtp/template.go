package smtp

// paymentConfirmationTemplate is the HTML body of the payment confirmation
// email. Kept inline so the binary ships self-contained.
const paymentConfirmationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Georgia, serif; color: #3d2b1f; background-color: #fdf6ee; margin: 0; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; padding: 32px;">
    <h1 style="color: #b5651d; margin-top: 0;">Caramelt</h1>
    <p>Hi {{.CustomerName}},</p>
    <p>We have received your payment for order <strong>{{.OrderCode}}</strong>. Thank you!</p>
    <p>Your order will be ready on <strong>{{.PrepDate}}</strong>.</p>
    <table style="width: 100%; border-collapse: collapse; margin: 16px 0;">
      <thead>
        <tr style="border-bottom: 2px solid #b5651d;">
          <th style="text-align: left; padding: 8px 4px;">Item</th>
          <th style="text-align: right; padding: 8px 4px;">Qty</th>
          <th style="text-align: right; padding: 8px 4px;">Price</th>
          <th style="text-align: right; padding: 8px 4px;">Subtotal</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #eee0d0;">
          <td style="padding: 8px 4px;">{{.Name}}</td>
          <td style="text-align: right; padding: 8px 4px;">{{.Quantity}}</td>
          <td style="text-align: right; padding: 8px 4px;">{{.UnitPrice}}</td>
          <td style="text-align: right; padding: 8px 4px;">{{.LineTotal}}</td>
        </tr>
        {{end}}
      </tbody>
      <tfoot>
        <tr>
          <td colspan="3" style="text-align: right; padding: 8px 4px; font-weight: bold;">Total</td>
          <td style="text-align: right; padding: 8px 4px; font-weight: bold;">{{.Total}}</td>
        </tr>
      </tfoot>
    </table>
    <p>Keep your order code handy to track your order on our website.</p>
    <p style="margin-bottom: 0;">Sweet regards,<br>The Caramelt team</p>
  </div>
</body>
</html>
`
