package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Signed out. Local habits are kept on this device.")
	return nil
}
