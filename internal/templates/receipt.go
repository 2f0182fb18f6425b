package templates

import "fmt"

// DonationReceiptHTML is the print layout rendered to PDF and attached to
// the donation thank-you email.
func DonationReceiptHTML(name, amount, receiptNumber string, isRecurring bool, badgeName, date, paymentMethod string) string {
	recurring := "Your one-time donation makes an immediate impact on the lives of animals in our care."
	if isRecurring {
		recurring = "Your recurring monthly donation helps us provide ongoing support to animals in need."
	}
	badge := ""
	if badgeName != "" {
		badge = fmt.Sprintf(`<p><strong>Badge:</strong> %s</p>`, badgeName)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html><head><meta charset="utf-8"/>
<style>
  body { margin: 0; padding: 15px; font-family: Arial, sans-serif; background-color: #f5f5f5; }
  .invoice-container { max-width: 750px; margin: 0 auto; background: #ffffff; color: #333; border: 1px solid #e0e0e0; border-radius: 10px; overflow: hidden; }
  .header { background-color: #00695c; padding: 14px; text-align: center; color: #ffffff; font-size: 24px; font-weight: bold; }
  .body { padding: 8px 25px; }
  .title { color: #00695c; font-size: 22px; margin: 15px 0 8px 0; }
  .receipt-section { margin: 20px 0; border: 1px solid #d1d5db; border-radius: 8px; padding: 15px; background-color: #f9fafb; }
  .amount { color: #16a34a; font-weight: bold; }
  .footer { background: #eceff1; padding: 12px; font-size: 12px; color: #607d8b; text-align: center; margin-top: 15px; }
  p { line-height: 1.4; margin: 8px 0; }
</style></head>
<body>
  <div class="invoice-container">
    <div class="header">VetBridge</div>
    <div class="body">
      <h2 class="title">Thank You for Your Generous Donation!</h2>
      <p>Dear <strong>%s</strong>,</p>
      <p>We sincerely appreciate your contribution to VetBridge. %s</p>
      <div class="receipt-section">
        <h3>Donation Receipt</h3>
        <p><strong>Receipt No:</strong> %s</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Donation Amount:</strong> <span class="amount">$%s</span></p>
        %s
        <p><strong>Payment Method:</strong> %s</p>
        <h4>Tax Statement:</h4>
        <p style="margin:0">VetBridge Inc is a 501(c)(3) non-profit organization. No goods or services were received in exchange for this gift. Please retain this receipt for your records.</p>
      </div>
      <p>If you have any questions, reach out to us at support@vetbridge.example.com.</p>
      <p style="margin-top: 20px;">With heartfelt thanks,</p>
      <p><em>&ndash; The VetBridge Team</em></p>
    </div>
    <div class="footer">
      <p>VetBridge Inc &middot; support@vetbridge.example.com</p>
    </div>
  </div>
</body></html>`, name, recurring, receiptNumber, date, amount, badge, paymentMethod)
}
