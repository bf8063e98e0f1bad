package milvus

// WithActiveDatabase runs fn with the client's active database switched to
// name. The active database is restored to DefaultDatabase on every exit
// path; a restore failure only surfaces when fn itself succeeded.
func WithActiveDatabase(client Client, name string, fn func() error) (err error) {
	if err = client.UseDatabase(name); err != nil {
		return err
	}
	defer func() {
		restoreErr := client.UseDatabase(DefaultDatabase)
		if err == nil {
			err = restoreErr
		}
	}()
	return fn()
}
