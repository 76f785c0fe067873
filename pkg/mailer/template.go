package mailer

import "fmt"

const subject = "Your OTP for The Sustainable Organic Farming"

func otpText(name, code string) string {
	return fmt.Sprintf("Hello %s!\n\nYour verification code for logging into your account: %s\n\nThis code will expire in 10 minutes. Do not share this code with anyone.", name, code)
}

func otpHTML(name, code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<div style="text-align: center; margin-bottom: 30px;">
				<h1 style="color: #5a8f45; margin-bottom: 10px;">The Sustainable Organic Farming</h1>
				<p style="color: #666;">Premium Organic Products</p>
			</div>
			<div style="background-color: #f8f6f0; padding: 30px; border-radius: 10px; text-align: center;">
				<h2 style="color: #8c6e4a; margin-bottom: 20px;">Hello %s!</h2>
				<p style="color: #666; margin-bottom: 30px;">Your verification code for logging into your account:</p>
				<div style="background-color: #5a8f45; color: white; font-size: 32px; font-weight: bold; padding: 20px; border-radius: 8px; letter-spacing: 5px; margin: 20px 0;">%s</div>
				<p style="color: #666; font-size: 14px; margin-top: 20px;">
					This code will expire in 10 minutes. Do not share this code with anyone.
				</p>
			</div>
			<div style="text-align: center; margin-top: 30px; color: #999; font-size: 12px;">
				<p>This is an automated message from The Sustainable Organic Farming</p>
			</div>
		</div>
	`, name, code)
}
