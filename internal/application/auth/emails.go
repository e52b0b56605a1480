package auth

import (
	"fmt"
	"time"

	"github.com/gautamsolar/certportal/internal/domain/entity"
)

// Cuerpos HTML de los correos del ciclo de vida de cuentas. El formato queda
// en manos del cliente de correo.

func registrationAdminBody(a *entity.Account) string {
	return fmt.Sprintf(`<h2>New User Registration</h2>
<table>
<tr><td><strong>Name:</strong></td><td>%s</td></tr>
<tr><td><strong>Email:</strong></td><td>%s</td></tr>
<tr><td><strong>Mobile:</strong></td><td>%s</td></tr>
<tr><td><strong>Company:</strong></td><td>%s</td></tr>
<tr><td><strong>Time:</strong></td><td>%s UTC</td></tr>
<tr><td><strong>Status:</strong></td><td>Pending Approval</td></tr>
</table>`,
		a.Name, a.Email, a.Phone, a.Company,
		time.Now().UTC().Format("2006-01-02 15:04:05"))
}

func approvalBody(a *entity.Account) string {
	return fmt.Sprintf(`<h2>Your Account Has Been Approved!</h2>
<p>Dear %s,</p>
<p>Your account at Gautam Solar Portal has been approved and activated.</p>
<p><strong>Email:</strong> %s</p>
<p>You can now log in with your registered credentials.</p>
<p>Thank you,<br><strong>Gautam Solar Team</strong></p>`, a.Name, a.Email)
}

func rejectionBody(name string) string {
	return fmt.Sprintf(`<h2>Registration Not Approved</h2>
<p>Dear %s,</p>
<p>We regret to inform you that your registration has not been approved at this time.</p>
<p>If you have questions, please contact our support team.</p>
<p>Thank you,<br><strong>Gautam Solar Team</strong></p>`, name)
}
